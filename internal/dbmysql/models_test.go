package dbmysql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOf(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2025, 3, 15, 23, 50, 0, 0, ist)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), DateOf(late))
	assert.Equal(t, "2025-03-15", DateKey(DateOf(late)))
}

func TestOrderedPairAndCounterpart(t *testing.T) {
	low, high := OrderedPair(9, 4)
	assert.Equal(t, uint64(4), low)
	assert.Equal(t, uint64(9), high)

	req := &FriendRequest{
		SenderID:   4,
		ReceiverID: 9,
		Sender:     &User{ID: 4, Username: "alice"},
		Receiver:   &User{ID: 9, Username: "bob"},
	}
	assert.Equal(t, "bob", req.Counterpart(4).Username)
	assert.Equal(t, "alice", req.Counterpart(9).Username)

	assert.NoError(t, req.BeforeCreate(nil))
	assert.Equal(t, uint64(4), req.PairLow)
	assert.Equal(t, uint64(9), req.PairHigh)
}

func TestUserPublic(t *testing.T) {
	token := "ExponentPushToken[x]"
	u := &User{ID: 3, Username: "carol", Email: "c@example.com", ExpoPushToken: &token}
	p := u.Public()
	assert.Equal(t, PublicProfile{ID: 3, Username: "carol"}, p)

	var none *User
	assert.Equal(t, PublicProfile{}, none.Public())
}
