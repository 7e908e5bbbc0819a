package reactors

import (
	"fmt"

	"go-modwatch/internal/heuristics"
	"go-modwatch/internal/logging"
	"go-modwatch/internal/models"
	"go-modwatch/internal/notifier"
)

// HandleMessage scans a message for suspicious links and keywords. An
// allowlisted domain is never evaluated against the suspicious set. The
// record keeps every extracted URL, not just the flagged ones, so the audit
// trail shows what the message actually contained.
func (r *Reactors) HandleMessage(guildID, channelID, authorID, content string) {
	if !r.cfg.EnableLinkAlerts {
		return
	}

	urls := heuristics.ExtractURLs(content)

	var hits []models.SuspiciousHit
	for _, rawURL := range urls {
		domain := heuristics.DomainOf(rawURL)
		if domain == "" {
			continue
		}
		if heuristics.IsAllowlisted(domain, r.cfg.AllowlistDomains) {
			continue
		}
		if heuristics.IsSuspiciousDomain(domain, r.cfg.SuspiciousDomains) {
			hits = append(hits, models.SuspiciousHit{
				URL:    rawURL,
				Reason: fmt.Sprintf("domain %q matches a flagged pattern", domain),
			})
		}
	}

	keywordFlag := heuristics.ContainsSuspiciousKeyword(content, r.cfg.SuspiciousKeywords)

	if len(hits) == 0 && !keywordFlag {
		return
	}

	logging.Info("Suspicious message by %s in guild %s: %d domain hit(s), keyword=%t",
		authorID, guildID, len(hits), keywordFlag)

	r.deliver(notifier.CategorySuspiciousLink,
		notifier.SuspiciousLinkDescription(authorID, channelID, hits, keywordFlag))

	r.appendRecord(models.Record{
		Type:        models.RecordSuspiciousLink,
		GuildID:     guildID,
		ChannelID:   channelID,
		AuthorID:    authorID,
		URLs:        urls,
		KeywordFlag: keywordFlag,
	})
}
