package logic

import (
	"errors"
	"fmt"
)

// ErrNoSnapshot is returned by every service before the first successful
// dataset refresh has published a snapshot.
var ErrNoSnapshot = errors.New("no dataset snapshot loaded yet")

// DataIntegrityError reports a structural violation in the observation
// table: a match/map group without exactly two balanced teams, mismatched
// mirror scores, or misaligned scoreboard halves. These preconditions are
// inherited from upstream data and a violation means every statistic
// derived from the group would be silently wrong, so it is surfaced
// instead of swallowed.
type DataIntegrityError struct {
	MatchID int64
	MapNum  int
	Detail  string
}

func (e *DataIntegrityError) Error() string {
	if e.MapNum > 0 {
		return fmt.Sprintf("data integrity violation in match %d map %d: %s", e.MatchID, e.MapNum, e.Detail)
	}
	return fmt.Sprintf("data integrity violation in match %d: %s", e.MatchID, e.Detail)
}
