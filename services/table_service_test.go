package services

import (
	"strings"
	"testing"

	"qrmenu/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCreate_GeneratesToken(t *testing.T) {
	f := newFixture(t)
	user, _ := f.tenant(t, "owner@a.test", entity.PlanFree, 10)

	table, err := f.tables.Create(user.ID, &TableIn{Name: "Masa 1"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(table.QRCode, "table_"))
	assert.True(t, table.IsActive)
}

func TestTableTokens_UniqueAcrossTenants(t *testing.T) {
	f := newFixture(t)
	userA, _ := f.tenant(t, "a@x.test", entity.PlanFree, 10)
	userB, _ := f.tenant(t, "b@x.test", entity.PlanFree, 10)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		ta, err := f.tables.Create(userA.ID, &TableIn{Name: "A"})
		require.NoError(t, err)
		tb, err := f.tables.Create(userB.ID, &TableIn{Name: "B"})
		require.NoError(t, err)

		assert.False(t, seen[ta.QRCode], "token reused: %s", ta.QRCode)
		assert.False(t, seen[tb.QRCode], "token reused: %s", tb.QRCode)
		seen[ta.QRCode] = true
		seen[tb.QRCode] = true
	}
}

func TestTableUpdate_CannotTouchToken(t *testing.T) {
	f := newFixture(t)
	user, _ := f.tenant(t, "owner@a.test", entity.PlanFree, 10)

	table, err := f.tables.Create(user.ID, &TableIn{Name: "Masa 1"})
	require.NoError(t, err)
	original := table.QRCode

	name := "Masa One"
	inactive := false
	updated, err := f.tables.Update(user.ID, table.ID, &TableUpdate{Name: &name, IsActive: &inactive})
	require.NoError(t, err)

	assert.Equal(t, "Masa One", updated.Name)
	assert.False(t, updated.IsActive)
	assert.Equal(t, original, updated.QRCode)
}

func TestTableAccess_CrossTenantIsNotFound(t *testing.T) {
	f := newFixture(t)
	userA, _ := f.tenant(t, "a@x.test", entity.PlanFree, 10)
	userB, _ := f.tenant(t, "b@x.test", entity.PlanFree, 10)

	theirs, err := f.tables.Create(userB.ID, &TableIn{Name: "B1"})
	require.NoError(t, err)

	err = f.tables.Delete(userA.ID, theirs.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.tables.QRCodePNG(userA.ID, theirs.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTableQRCodePNG(t *testing.T) {
	f := newFixture(t)
	user, _ := f.tenant(t, "owner@a.test", entity.PlanFree, 10)

	table, err := f.tables.Create(user.ID, &TableIn{Name: "Masa 1"})
	require.NoError(t, err)

	png, err := f.tables.QRCodePNG(user.ID, table.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic header
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
