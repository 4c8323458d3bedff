package registration

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
)

// MessageContext carries the per-edit values interpolated into the
// post-updated notices.
type MessageContext struct {
	Permalink     string
	RevisionTitle string // empty when the edit is not a revision restore
	ScheduledFor  time.Time
}

// UpdatedMessages returns the notices shown after a project is saved, keyed
// by the host's message index. Index 0 is unused and index 5 is empty unless
// a revision was restored.
func UpdatedMessages(cfg domain.ContentTypeConfig, mc MessageContext) map[int]string {
	one := cfg.SingularName()
	link := mc.Permalink
	preview := previewURL(mc.Permalink)

	restored := ""
	if mc.RevisionTitle != "" {
		restored = fmt.Sprintf("%s restored to revision from %s", one, mc.RevisionTitle)
	}

	return map[int]string{
		0:  "",
		1:  fmt.Sprintf(`%s updated. <a target="_blank" href="%s">View %s</a>`, one, link, one),
		2:  "Custom field updated.",
		3:  "Custom field deleted.",
		4:  one + " updated.",
		5:  restored,
		6:  fmt.Sprintf(`%s published. <a href="%s">View %s</a>`, one, link, one),
		7:  one + " saved.",
		8:  fmt.Sprintf(`%s submitted. <a target="_blank" href="%s">Preview %s</a>`, one, preview, one),
		9:  fmt.Sprintf(`%s scheduled for: <strong>%s</strong>. <a target="_blank" href="%s">Preview %s</a>`, one, mc.ScheduledFor.Format("Jan 2, 2006 @ 15:04"), link, one),
		10: fmt.Sprintf(`%s draft updated. <a target="_blank" href="%s">Preview %s</a>`, one, preview, one),
	}
}

func previewURL(permalink string) string {
	u, err := url.Parse(permalink)
	if err != nil {
		return permalink
	}
	q := u.Query()
	q.Set("preview", "true")
	u.RawQuery = q.Encode()
	return u.String()
}
