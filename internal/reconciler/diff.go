package reconciler

import (
	"domainsync/pkg/domain"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Plan is the outcome of comparing the registrar listing with the cached
// snapshot. Every domain of either side appears in exactly one of Added,
// Updated, Deleted and Unchanged. ContactSync lists the domains whose
// contacts are checked after the snapshot is written. All lists are sorted.
type Plan struct {
	Added       []string `json:"added"`
	Updated     []string `json:"updated"`
	Deleted     []string `json:"deleted"`
	Unchanged   []string `json:"unchanged"`
	ContactSync []string `json:"contactSync"`
}

// HasChanges reports whether the plan adds, updates or deletes anything.
func (p Plan) HasChanges() bool {
	return len(p.Added)+len(p.Updated)+len(p.Deleted) > 0
}

// maxSummaryNames caps how many domain names are spelled out per category.
const maxSummaryNames = 20

func summarize(label string, names []string) string {
	if len(names) == 0 {
		return "0 " + label
	}

	shown := names
	suffix := ""
	if len(shown) > maxSummaryNames {
		shown = shown[:maxSummaryNames]
		suffix = fmt.Sprintf(" and %d more", len(names)-maxSummaryNames)
	}

	return fmt.Sprintf("%d %s (%s%s)", len(names), label, strings.Join(shown, ", "), suffix)
}

// Summary renders the plan for operators.
func (p Plan) Summary() string {
	return "Domain registrations reconciled: " + strings.Join([]string{
		summarize("added", p.Added),
		summarize("updated", p.Updated),
		summarize("deleted", p.Deleted),
	}, ", ")
}

// Diff classifies each domain of registered and cached:
//   - a registered domain that expired more than grace before now is deleted,
//     whatever the cache holds;
//   - a registered domain missing from cached is added;
//   - a registered domain that differs from its cached record is updated,
//     otherwise it is unchanged;
//   - a cached domain missing from registered is deleted.
//
// Added, updated and unchanged domains are queued for contact sync. Diff has
// no side effects.
func Diff(registered, cached map[string]domain.Registration, now time.Time, grace time.Duration) Plan {
	var plan Plan

	for name, reg := range registered {
		if reg.Expired(now, grace) {
			plan.Deleted = append(plan.Deleted, name)

			continue
		}

		prev, ok := cached[name]
		switch {
		case !ok:
			plan.Added = append(plan.Added, name)
		case !prev.Equal(reg):
			plan.Updated = append(plan.Updated, name)
		default:
			plan.Unchanged = append(plan.Unchanged, name)
		}
		plan.ContactSync = append(plan.ContactSync, name)
	}

	for name := range cached {
		if _, ok := registered[name]; !ok {
			plan.Deleted = append(plan.Deleted, name)
		}
	}

	slices.Sort(plan.Added)
	slices.Sort(plan.Updated)
	slices.Sort(plan.Deleted)
	slices.Sort(plan.Unchanged)
	slices.Sort(plan.ContactSync)

	return plan
}
