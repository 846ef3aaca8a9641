package utils

import (
	"testing"

	"github.com/google/uuid"

	"wasel/ms-delivery-management/pkg/model"
)

func TestStatusIndex_Classify(t *testing.T) {
	idx := BuildStatusIndex(nil)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "canonical code", raw: "STS_003", want: STATUS_KIND_DELIVERED},
		{name: "arabic label", raw: "تم التوصيل", want: STATUS_KIND_DELIVERED},
		{name: "english keyword", raw: "delivered", want: STATUS_KIND_DELIVERED},
		{name: "code is case insensitive", raw: "sts_003", want: STATUS_KIND_DELIVERED},
		{name: "surrounding whitespace", raw: "  delivered ", want: STATUS_KIND_DELIVERED},
		{name: "pending arabic", raw: "بالانتظار", want: STATUS_KIND_PENDING},
		{name: "postponed", raw: "postponed", want: STATUS_KIND_POSTPONED},
		{name: "returned code", raw: "STS_005", want: STATUS_KIND_RETURNED},
		{name: "collected arabic", raw: "تم التحصيل", want: STATUS_KIND_COLLECTED},
		{name: "unknown falls through", raw: "on the moon", want: STATUS_KIND_UNKNOWN},
		{name: "empty string", raw: "", want: STATUS_KIND_UNKNOWN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.Classify(tt.raw); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// Admins can rename a status row; the classifier must then match the renamed
// label through the table cross-reference.
func TestStatusIndex_DynamicCrossReference(t *testing.T) {
	renamedID := uuid.New()
	statuses := []model.Status{
		{BaseModel: model.BaseModel{ID: renamedID}, Code: "STS_003", Name: "وصلت للزبون", IsActive: true},
		{BaseModel: model.BaseModel{ID: uuid.New()}, Code: "STS_004", Name: "مؤجل للغد", IsActive: true},
	}
	idx := BuildStatusIndex(statuses)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "renamed delivered label", raw: "وصلت للزبون", want: STATUS_KIND_DELIVERED},
		{name: "match by row id", raw: renamedID.String(), want: STATUS_KIND_DELIVERED},
		{name: "renamed postponed label", raw: "مؤجل للغد", want: STATUS_KIND_POSTPONED},
		{name: "literal tier still works", raw: "delivered", want: STATUS_KIND_DELIVERED},
		{name: "default label still works", raw: "تم التوصيل", want: STATUS_KIND_DELIVERED},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.Classify(tt.raw); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// A table row that reuses a literal synonym for a different kind must not
// shadow the literal lists.
func TestStatusIndex_LiteralTierWins(t *testing.T) {
	statuses := []model.Status{
		{BaseModel: model.BaseModel{ID: uuid.New()}, Code: "STS_004", Name: "delivered", IsActive: true},
	}
	idx := BuildStatusIndex(statuses)

	if got := idx.Classify("delivered"); got != STATUS_KIND_DELIVERED {
		t.Errorf("Classify(delivered) = %q, want %q", got, STATUS_KIND_DELIVERED)
	}
}
