package gamestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer_Defaults(t *testing.T) {
	p := newPlayer("id-1", "Alice", TokenBoot)
	assert.Equal(t, StartingBalance, p.Balance)
	assert.Equal(t, 0, p.Position)
	assert.True(t, p.Active)
	assert.Empty(t, p.Properties)
}

func TestAddProperty_Idempotent(t *testing.T) {
	p := newPlayer("id-1", "Alice", TokenBoot)
	p.AddProperty(3)
	p.AddProperty(3)
	assert.Equal(t, []int{3}, p.Properties)
}

func TestRemoveProperty(t *testing.T) {
	p := newPlayer("id-1", "Alice", TokenBoot)
	p.AddProperty(3)
	p.AddProperty(5)
	p.RemoveProperty(3)
	assert.Equal(t, []int{5}, p.Properties)
}

func TestCreditDebit(t *testing.T) {
	p := newPlayer("id-1", "Alice", TokenBoot)
	p.Credit(100)
	assert.Equal(t, StartingBalance+100, p.Balance)
	p.Debit(200)
	assert.Equal(t, StartingBalance-100, p.Balance)
}

func TestBankrupt(t *testing.T) {
	p := newPlayer("id-1", "Alice", TokenBoot)
	assert.False(t, p.Bankrupt())
	p.Debit(StartingBalance + 1)
	assert.True(t, p.Bankrupt())
}
