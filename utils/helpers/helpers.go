package helpers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jakehl/goid"
)

var (
	paymentReferenceRe = regexp.MustCompile(`^[\w \-]{1,18}$`)
	uuidV4Re           = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)
)

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

func IsStringSliceContains(stringSlice []string, searchString string) bool {
	for _, value := range stringSlice {
		if value == searchString {
			return true
		}
	}
	return false
}

// IsValidPaymentReference reports whether a payment reference satisfies the
// processor's format constraint: word characters, spaces and hyphens, at
// most 18 characters.
func IsValidPaymentReference(reference string) bool {
	return paymentReferenceRe.MatchString(reference)
}

// IsValidCompanyId reports whether the configured company id has the UUID v4
// shape the processor issues.
func IsValidCompanyId(companyId string) bool {
	return uuidV4Re.MatchString(companyId)
}

// JoinFields renders a field-name list the way verification errors quote it.
func JoinFields(fields []string) string {
	return strings.Join(fields, ", ")
}
