package utils

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func CurrentUser(c *http.Request) (uuid.UUID, error) {
	userIdStr := c.Header.Get("x-user-id")
	if strings.Contains(userIdStr, "|") {
		userIdStr = strings.Split(userIdStr, "|")[0]
	}
	res, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, err
	}
	return res, nil
}

func String(in string) *string {
	return &in
}

// BuildOrderID formats the public order identifier from its sequence number.
func BuildOrderID(orderNumber int) string {
	return fmt.Sprintf("%s%d", ORDER_ID_PREFIX, orderNumber)
}

// ParseOrderNumber extracts the sequence from an ORD-<n> identifier.
func ParseOrderNumber(id string) (int, error) {
	if !strings.HasPrefix(id, ORDER_ID_PREFIX) {
		return 0, fmt.Errorf("invalid order id: %v", id)
	}
	return strconv.Atoi(strings.TrimPrefix(id, ORDER_ID_PREFIX))
}

// RoundAmount keeps financial fields at two-decimal display precision.
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}

// TransformString strips diacritics and folds case so that search and status
// matching tolerate both Arabic labels and accented latin input.
func TransformString(str string, toUpper bool) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	rs, _, err := transform.String(t, str)
	if err != nil {
		rs = str
	}
	if toUpper {
		return strings.ToUpper(rs)
	}
	return strings.ToLower(rs)
}
