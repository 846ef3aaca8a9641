package utils

import (
	"strings"

	"wasel/ms-delivery-management/pkg/model"
)

// Classification kinds consumed by the dashboard KPI aggregation.
const (
	STATUS_KIND_DELIVERED = "delivered"
	STATUS_KIND_PENDING   = "pending"
	STATUS_KIND_POSTPONED = "postponed"
	STATUS_KIND_RETURNED  = "returned"
	STATUS_KIND_COLLECTED = "collected"
	STATUS_KIND_UNKNOWN   = ""
)

// Literal synonym tier: English keyword, Arabic dashboard label, canonical code.
var statusSynonyms = map[string][]string{
	STATUS_KIND_DELIVERED: {"delivered", STATUS_NAME_DELIVERED, STATUS_CODE_DELIVERED},
	STATUS_KIND_PENDING:   {"pending", STATUS_NAME_PENDING, STATUS_CODE_PENDING},
	STATUS_KIND_POSTPONED: {"postponed", STATUS_NAME_POSTPONED, STATUS_CODE_POSTPONED},
	STATUS_KIND_RETURNED:  {"returned", STATUS_NAME_RETURNED, STATUS_CODE_RETURNED},
	STATUS_KIND_COLLECTED: {"collected", STATUS_NAME_COLLECTED, STATUS_CODE_COLLECTED},
}

// Canonical code list per kind, used to cross-reference the configurable
// statuses table when an admin has renamed or recoded an entry.
var statusKindCodes = map[string][]string{
	STATUS_KIND_DELIVERED: {STATUS_CODE_DELIVERED},
	STATUS_KIND_PENDING:   {STATUS_CODE_PENDING},
	STATUS_KIND_POSTPONED: {STATUS_CODE_POSTPONED},
	STATUS_KIND_RETURNED:  {STATUS_CODE_RETURNED},
	STATUS_KIND_COLLECTED: {STATUS_CODE_COLLECTED},
}

// StatusIndex resolves a raw order status string to a classification kind.
// Build once per statuses-table load, lookups are O(1) so classifying a large
// order set stays linear.
type StatusIndex struct {
	exact map[string]string
}

func foldStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BuildStatusIndex merges the dynamic table tier first and the literal synonym
// tier second, so the literal lists always win on conflict.
func BuildStatusIndex(statuses []model.Status) *StatusIndex {
	idx := &StatusIndex{exact: make(map[string]string)}

	for kind, codes := range statusKindCodes {
		for _, st := range statuses {
			if !matchesAny(codes, st.Code) && !matchesAny(codes, st.ID.String()) {
				continue
			}
			idx.exact[foldStatus(st.Name)] = kind
			idx.exact[foldStatus(st.Code)] = kind
			idx.exact[foldStatus(st.ID.String())] = kind
		}
	}

	for kind, synonyms := range statusSynonyms {
		for _, s := range synonyms {
			idx.exact[foldStatus(s)] = kind
		}
	}

	return idx
}

// Classify returns the kind for a raw status string, STATUS_KIND_UNKNOWN when
// the value matches none of the five categories.
func (i *StatusIndex) Classify(raw string) string {
	return i.exact[foldStatus(raw)]
}

func matchesAny(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
