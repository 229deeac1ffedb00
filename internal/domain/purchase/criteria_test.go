//go:build unit

package purchase_test

import (
	"testing"

	"pet-order/internal/domain/purchase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

type criteriaCase struct {
	name      string
	purchaser string
	petType   string
	store     *int
	petName   *string
	errIs     error
}

func TestNewCriteria(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		c, err := purchase.NewCriteria("Ana", "Poodle", nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "Ana", c.Purchaser())
		assert.Equal(t, "Poodle", c.PetType())
		_, pinned := c.PetName()
		assert.False(t, pinned)
	})

	t.Run("バリデーション", func(t *testing.T) {
		cases := []criteriaCase{
			{
				name:      "purchaser必須",
				purchaser: "",
				petType:   "Poodle",
				errIs:     purchase.ErrPurchaserRequired,
			},
			{
				name:      "pet type必須",
				purchaser: "Ana",
				petType:   "",
				errIs:     purchase.ErrPetTypeRequired,
			},
			{
				name:      "store無しのpet nameはNG",
				purchaser: "Ana",
				petType:   "Poodle",
				petName:   strPtr("Jamie"),
				errIs:     purchase.ErrPetNameRequiresStore,
			},
			{
				name:      "未知のstoreはNG",
				purchaser: "Ana",
				petType:   "Poodle",
				store:     intPtr(3),
				errIs:     purchase.ErrUnknownStore,
			},
			{
				name:      "store付きのpet nameはOK",
				purchaser: "Ana",
				petType:   "Poodle",
				store:     intPtr(1),
				petName:   strPtr("Jamie"),
			},
			{
				name:      "空のpet nameは未指定扱い",
				purchaser: "Ana",
				petType:   "Poodle",
				petName:   strPtr(""),
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c, err := purchase.NewCriteria(tc.purchaser, tc.petType, tc.store, tc.petName)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tc.purchaser, c.Purchaser())
			})
		}
	})
}

func TestCriteriaStoresToSearch(t *testing.T) {
	t.Run("store指定なしは全store昇順", func(t *testing.T) {
		c, err := purchase.NewCriteria("Ana", "Poodle", nil, nil)
		require.NoError(t, err)

		assert.Equal(t, []int{1, 2}, c.StoresToSearch())
	})

	t.Run("store指定ありはそのstoreのみ", func(t *testing.T) {
		c, err := purchase.NewCriteria("Ana", "Poodle", intPtr(2), nil)
		require.NoError(t, err)

		assert.Equal(t, []int{2}, c.StoresToSearch())
	})
}
