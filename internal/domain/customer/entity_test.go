//go:build unit

package customer_test

import (
	"testing"
	"time"

	"barberpro/internal/domain/customer"
	"barberpro/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		c, err := builder.NewCustomerBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(0), c.TotalSpentCents())
		assert.Equal(t, now, c.LastVisit())
	})

	t.Run("空の名前NG", func(t *testing.T) {
		_, err := builder.NewCustomerBuilder().WithName("  ").BuildDomain()
		assert.ErrorIs(t, err, customer.ErrEmptyName)
	})
}

func TestRecordVisit(t *testing.T) {
	t.Run("累計金額と最終来店日時が更新される", func(t *testing.T) {
		c, err := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, err)

		first := time.Date(2026, 8, 10, 15, 0, 0, 0, time.UTC)
		require.NoError(t, c.RecordVisit(3500, first))
		assert.Equal(t, int64(3500), c.TotalSpentCents())
		assert.Equal(t, first, c.LastVisit())

		second := time.Date(2026, 8, 20, 11, 0, 0, 0, time.UTC)
		require.NoError(t, c.RecordVisit(4200, second))
		assert.Equal(t, int64(7700), c.TotalSpentCents())
		assert.Equal(t, second, c.LastVisit())
	})

	t.Run("負の金額NG", func(t *testing.T) {
		c, err := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, c.RecordVisit(-1, time.Now()), customer.ErrNegativeAmount)
		assert.Equal(t, int64(0), c.TotalSpentCents())
	})
}

func TestIsInactive(t *testing.T) {
	lastVisit := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	threshold := 25 * 24 * time.Hour

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{
			name: "閾値より前は活動中",
			now:  lastVisit.Add(threshold - time.Hour),
			want: false,
		},
		{
			name: "ちょうど閾値は活動中",
			now:  lastVisit.Add(threshold),
			want: false,
		},
		{
			name: "閾値を1秒超えたら休眠",
			now:  lastVisit.Add(threshold + time.Second),
			want: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cust, err := builder.NewCustomerBuilder().WithNow(lastVisit).BuildDomain()
			require.NoError(t, err)

			assert.Equal(t, c.want, cust.IsInactive(c.now, threshold))
		})
	}
}
