package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(h, m int) time.Time {
	return time.Date(2024, 1, 15, h, m, 0, 0, time.UTC)
}

func TestTimeRangeOverlaps(t *testing.T) {
	r := TimeRange{Start: at(9, 0), End: at(10, 0)}

	assert.True(t, r.Overlaps(TimeRange{Start: at(9, 30), End: at(11, 0)}))
	assert.True(t, r.Overlaps(TimeRange{Start: at(8, 0), End: at(12, 0)}))
	assert.False(t, r.Overlaps(TimeRange{Start: at(10, 0), End: at(11, 0)}), "touching ranges do not overlap")
	assert.False(t, r.Overlaps(TimeRange{Start: at(8, 0), End: at(9, 0)}))
}

func TestTimeRangeSubtract(t *testing.T) {
	r := TimeRange{Start: at(9, 0), End: at(12, 0)}

	assert.Equal(t, []TimeRange{r}, r.Subtract(TimeRange{Start: at(13, 0), End: at(14, 0)}))
	assert.Empty(t, r.Subtract(TimeRange{Start: at(8, 0), End: at(13, 0)}))
	assert.Equal(t, []TimeRange{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(11, 0), End: at(12, 0)},
	}, r.Subtract(TimeRange{Start: at(10, 0), End: at(11, 0)}))
	assert.Equal(t, []TimeRange{{Start: at(10, 0), End: at(12, 0)}}, r.Subtract(TimeRange{Start: at(9, 0), End: at(10, 0)}))
}

func TestBookingInputEndTime(t *testing.T) {
	in := BookingInput{StartTime: at(9, 45), Duration: 30}
	assert.Equal(t, at(10, 15), in.EndTime())
}
