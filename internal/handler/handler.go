package handler

import (
	"github.com/MarloFC/ArchProj/pkg/gemini"
	"github.com/MarloFC/ArchProj/pkg/mailer"
	"github.com/MarloFC/ArchProj/pkg/pagecache"
	"github.com/MarloFC/ArchProj/prometheus"
)

var (
	mailSender mailer.Sender
	aiClient   *gemini.Client
	pages      *pagecache.Cache
)

// Init wires the handler package's side-channel dependencies: the mail relay,
// the copy-suggestion client and the rendered-page cache. Any of them may be
// nil; the corresponding operation then degrades per its contract.
func Init(mail mailer.Sender, ai *gemini.Client, cache *pagecache.Cache) {
	mailSender = mail
	aiClient = ai
	pages = cache
}

// Cache invalidation is a best-effort side effect layered under the TTL
// safety net; it never blocks or fails a write.

func invalidateHome() {
	if pages == nil {
		return
	}
	pages.Invalidate("/", "/projects")
	pages.InvalidatePrefix("/project/")
	prometheus.RecordCache("home", "invalidate")
}

func invalidateTeam() {
	if pages == nil {
		return
	}
	pages.Invalidate("/team")
	prometheus.RecordCache("team", "invalidate")
}

func invalidateAll() {
	if pages == nil {
		return
	}
	pages.Flush()
	prometheus.RecordCache("all", "invalidate")
}
