package rankingcoach

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"seo-provisioner/internal/features/provisioning/domain"
)

// createdLayout matches the vendor's "Y-m-d H:i:s.u" timestamps; the fraction is optional.
const createdLayout = "2006-01-02 15:04:05.999999"

const statusActive = "active"

var numericPattern = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)

// Subscription is one entry of an account's subscription history.
type Subscription struct {
	ID      domain.Identifier `json:"id"`
	Name    domain.Identifier `json:"name"`
	Status  string            `json:"status"`
	Created string            `json:"created"`
}

// Active reports whether the subscription is currently active.
func (s Subscription) Active() bool {
	return s.Status == statusActive
}

// CreatedAt parses the creation timestamp. Unparseable values yield the zero time.
func (s Subscription) CreatedAt() time.Time {
	t, err := time.Parse(createdLayout, strings.TrimSpace(s.Created))
	if err != nil {
		return time.Time{}
	}
	return t
}

// CurrentSubscription picks the subscription an account is on: active beats
// non-active, then the later creation time wins. On equal times the later entry wins.
func CurrentSubscription(subs []Subscription) (Subscription, bool) {
	var (
		current Subscription
		found   bool
	)

	for _, sub := range subs {
		if !found {
			current, found = sub, true
			continue
		}

		switch {
		case current.Active() && !sub.Active():
			continue
		case !current.Active() && sub.Active():
			current = sub
		case current.CreatedAt().After(sub.CreatedAt()):
			continue
		default:
			current = sub
		}
	}

	return current, found
}

// isNumeric mirrors how plan identifiers are classified: ids are numeric, names are not.
func isNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// matches reports whether a catalog entry is the requested package.
// Numeric packages compare against the id, anything else against the name.
func (s Subscription) matches(pkg string) bool {
	if s.ID == "" || s.Name == "" {
		return false
	}
	if !isNumeric(pkg) {
		return pkg == s.Name.String()
	}
	return pkg == s.ID.String()
}

// jsonID renders an id as a JSON number when it is an integer, keeping the vendor's own type.
func jsonID(id domain.Identifier) any {
	if isNumeric(id.String()) && !strings.ContainsAny(id.String(), ".eE") {
		return json.Number(strings.TrimSpace(id.String()))
	}
	return id.String()
}
