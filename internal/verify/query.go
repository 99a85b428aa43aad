package verify

import (
	"fmt"
	"time"

	"github.com/claimlens/claimlens/internal/model"
)

// maxQueryLength bounds the claim-text portion of a search query to respect
// provider query-length limits
const maxQueryLength = 200

// queryNow returns the current time (injectable for tests)
var queryNow = time.Now

// BuildQuery derives a search query from a claim. The claim text is
// truncated first; time-sensitive claim types get a recency qualifier
// appended after truncation. Pure string transform, no failure modes.
func BuildQuery(claim model.Claim) string {
	query := claim.Text
	if len([]rune(query)) > maxQueryLength {
		query = string([]rune(query)[:maxQueryLength])
	}

	year := queryNow().Year()
	switch claim.ClaimType {
	case model.ClaimTypeFinancial:
		query += fmt.Sprintf(" current data %d %d", year, year+1)
	case model.ClaimTypeStatistic:
		query += fmt.Sprintf(" latest statistics %d", year)
	}

	return query
}
