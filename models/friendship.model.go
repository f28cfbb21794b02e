package models

import "gorm.io/gorm"

// Friendship statuses. A friendship is created pending, moves to accepted
// or rejected only by the addressee, and is removed entirely by unfriend.
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipRejected = "rejected"
)

// Friendship is a directed edge from requester to addressee. The ordered
// pair (requester, addressee) is unique; the reverse edge is a separate row,
// so A->B and B->A can coexist if both users request independently.
type Friendship struct {
	gorm.Model
	RequesterID uint   `json:"requester_id" gorm:"uniqueIndex:idx_requester_addressee;not null"`
	AddresseeID uint   `json:"addressee_id" gorm:"uniqueIndex:idx_requester_addressee;not null"`
	Status      string `json:"status" gorm:"default:'pending'"`
	Requester   User   `json:"requester" gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	Addressee   User   `json:"addressee" gorm:"foreignKey:AddresseeID;constraint:OnDelete:CASCADE"`
}
