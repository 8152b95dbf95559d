package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
)

// FriendRequest is a directed proposal from Sender to Receiver. Rejected and
// cancelled requests are deleted, so only pending and accepted rows exist.
// PairLow/PairHigh hold the unordered pair and back the one-request-per-pair
// unique index.
type FriendRequest struct {
	ID          uint64              `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	SenderID    uint64              `gorm:"column:sender_id;not null;index" json:"senderId"`
	ReceiverID  uint64              `gorm:"column:receiver_id;not null;index" json:"receiverId"`
	PairLow     uint64              `gorm:"column:pair_low;not null;uniqueIndex:uq_friend_pair,priority:1" json:"-"`
	PairHigh    uint64              `gorm:"column:pair_high;not null;uniqueIndex:uq_friend_pair,priority:2" json:"-"`
	Status      FriendRequestStatus `gorm:"column:status;size:16;not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	RespondedAt *time.Time          `gorm:"column:responded_at" json:"respondedAt"`

	Sender   *User `gorm:"foreignKey:SenderID;references:ID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID;references:ID" json:"receiver,omitempty"`
}

func (FriendRequest) TableName() string {
	return "friend_requests"
}

func (f *FriendRequest) BeforeCreate(tx *gorm.DB) error {
	f.PairLow, f.PairHigh = OrderedPair(f.SenderID, f.ReceiverID)
	return nil
}

// OrderedPair returns the two ids smallest first.
func OrderedPair(a, b uint64) (uint64, uint64) {
	if a > b {
		return b, a
	}
	return a, b
}

// Counterpart returns the endpoint of the request that is not userID.
func (f *FriendRequest) Counterpart(userID uint64) *User {
	if f.SenderID == userID {
		return f.Receiver
	}
	return f.Sender
}
