//go:build unit

package appointment_test

import (
	"testing"

	"barberpro/internal/domain/appointment"
	"barberpro/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AppointmentBuilder)
	errIs  error
}

func TestNewAppointment(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, appointment.StatusPending, actual.Status())
		assert.True(t, actual.IsOpen())
	})

	t.Run("初期ステータス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "PENDING OK",
				mutate: func(b *builder.AppointmentBuilder) { b.WithStatus("PENDING") },
			},
			{
				name:   "QUEUE OK（ウォークイン）",
				mutate: func(b *builder.AppointmentBuilder) { b.WithStatus("QUEUE") },
			},
			{
				name:   "COMPLETED は初期ステータスにできない",
				mutate: func(b *builder.AppointmentBuilder) { b.WithStatus("COMPLETED") },
				errIs:  appointment.ErrInvalidInitialStatus,
			},
			{
				name:   "CANCELLED は初期ステータスにできない",
				mutate: func(b *builder.AppointmentBuilder) { b.WithStatus("CANCELLED") },
				errIs:  appointment.ErrInvalidInitialStatus,
			},
			{
				name:   "不明なステータスNG",
				mutate: func(b *builder.AppointmentBuilder) { b.WithStatus("WAITING") },
				errIs:  appointment.ErrInvalidInitialStatus,
			},
		})
	})

	t.Run("サービス名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空のサービス名NG",
				mutate: func(b *builder.AppointmentBuilder) { b.WithService("") },
				errIs:  appointment.ErrEmptyService,
			},
			{
				name:   "空白のみのサービス名NG",
				mutate: func(b *builder.AppointmentBuilder) { b.WithService("   ") },
				errIs:  appointment.ErrEmptyService,
			},
		})
	})

	t.Run("価格検証", func(t *testing.T) {
		_, err := appointment.NewMoney(-100)
		assert.ErrorIs(t, err, appointment.ErrNegativePrice)
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("PENDING から完了できる", func(t *testing.T) {
		a, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, a.Complete())
		assert.Equal(t, appointment.StatusCompleted, a.Status())
		assert.False(t, a.IsOpen())
	})

	t.Run("QUEUE から完了できる", func(t *testing.T) {
		a, err := builder.NewAppointmentBuilder().WithStatus("QUEUE").BuildDomain()
		require.NoError(t, err)

		require.NoError(t, a.Complete())
		assert.Equal(t, appointment.StatusCompleted, a.Status())
	})

	t.Run("完了済みは再度完了できない", func(t *testing.T) {
		a, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, a.Complete())

		assert.ErrorIs(t, a.Complete(), appointment.ErrInvalidStatusTransition)
	})

	t.Run("完了済みはキャンセルできない", func(t *testing.T) {
		a, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, a.Complete())

		assert.ErrorIs(t, a.Cancel(), appointment.ErrInvalidStatusTransition)
	})

	t.Run("キャンセル済みは完了できない", func(t *testing.T) {
		a, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, a.Cancel())

		assert.ErrorIs(t, a.Complete(), appointment.ErrInvalidStatusTransition)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAppointmentBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
			}
		})
	}
}
