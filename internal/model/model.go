package model

import (
	"time"
)

type RentalStatus string

const (
	RentalPending  RentalStatus = "PENDING"
	RentalActive   RentalStatus = "ACTIVE"
	RentalRejected RentalStatus = "REJECTED"
	RentalReturned RentalStatus = "RETURNED"
)

type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "PENDING"
	PurchaseCompleted PurchaseStatus = "COMPLETED"
	PurchaseRejected  PurchaseStatus = "REJECTED"
)

type Book struct {
	ID              int       `json:"-" db:"id"`
	BookUid         string    `json:"bookUid" db:"book_uid"`
	Owner           string    `json:"owner" db:"owner"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"`
	Description     string    `json:"description" db:"description"`
	AvailableCopies int       `json:"availableCopies" db:"available_copies"`
	PricePerDay     float64   `json:"pricePerDay" db:"price_per_day"`
	PurchasePrice   float64   `json:"purchasePrice" db:"purchase_price"`
	Disabled        bool      `json:"disabled" db:"disabled"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type CreateBookRequest struct {
	Title           string  `json:"title" validate:"required,max=200"`
	Author          string  `json:"author" validate:"required,max=200"`
	Description     string  `json:"description"`
	AvailableCopies int     `json:"availableCopies" validate:"min=0"`
	PricePerDay     float64 `json:"pricePerDay" validate:"min=0"`
	PurchasePrice   float64 `json:"purchasePrice" validate:"min=0"`
	Owner           string  `json:"-" validate:"required"`
}

type UpdateBookRequest struct {
	Title         *string  `json:"title" validate:"omitempty,max=200"`
	Author        *string  `json:"author" validate:"omitempty,max=200"`
	Description   *string  `json:"description"`
	PricePerDay   *float64 `json:"pricePerDay" validate:"omitempty,min=0"`
	PurchasePrice *float64 `json:"purchasePrice" validate:"omitempty,min=0"`
}

type Rental struct {
	ID           int          `json:"-" db:"id"`
	RentalUid    string       `json:"rentalUid" db:"rental_uid"`
	BookID       int          `json:"-" db:"book_id"`
	BookUid      string       `json:"bookUid" db:"book_uid"`
	Renter       string       `json:"renter" db:"renter"`
	Owner        string       `json:"owner" db:"owner"`
	DurationDays int          `json:"durationDays" db:"duration_days"`
	TotalPrice   float64      `json:"totalPrice" db:"total_price"`
	Status       RentalStatus `json:"status" db:"status"`
	RequestedAt  time.Time    `json:"requestedAt" db:"requested_at"`
	ApprovedAt   *time.Time   `json:"approvedAt,omitempty" db:"approved_at"`
	ReturnedAt   *time.Time   `json:"returnedAt,omitempty" db:"returned_at"`
}

type CreateRentalRequest struct {
	BookUid      string `json:"-" validate:"required"`
	DurationDays int    `json:"durationDays" validate:"required,min=1"`
	Renter       string `json:"-" validate:"required"`
}

type Purchase struct {
	ID          int            `json:"-" db:"id"`
	PurchaseUid string         `json:"purchaseUid" db:"purchase_uid"`
	BookID      int            `json:"-" db:"book_id"`
	BookUid     string         `json:"bookUid" db:"book_uid"`
	Buyer       string         `json:"buyer" db:"buyer"`
	Seller      string         `json:"seller" db:"seller"`
	Price       float64        `json:"price" db:"price"`
	Status      PurchaseStatus `json:"status" db:"status"`
	RequestedAt time.Time      `json:"requestedAt" db:"requested_at"`
	ApprovedAt  *time.Time     `json:"approvedAt,omitempty" db:"approved_at"`
}

type CreatePurchaseRequest struct {
	BookUid string `json:"-" validate:"required"`
	Buyer   string `json:"-" validate:"required"`
}

// Transactions aggregates both sides of a user's deals.
type Transactions struct {
	Rentals   []Rental   `json:"rentals"`
	Purchases []Purchase `json:"purchases"`
}

type Channel struct {
	ID             int       `json:"-" db:"id"`
	ChannelUid     string    `json:"channelUid" db:"channel_uid"`
	TransactionUid string    `json:"transactionUid" db:"transaction_uid"`
	BookID         int       `json:"-" db:"book_id"`
	BookTitle      string    `json:"bookTitle" db:"book_title"`
	ParticipantA   string    `json:"participantA" db:"participant_a"`
	ParticipantB   string    `json:"participantB" db:"participant_b"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// HasParticipant reports whether user is one of the channel's two parties.
func (c Channel) HasParticipant(user string) bool {
	return c.ParticipantA == user || c.ParticipantB == user
}

type Message struct {
	ID        int64     `json:"id" db:"id"`
	ChannelID int       `json:"-" db:"channel_id"`
	Sender    string    `json:"sender" db:"sender"`
	Text      string    `json:"text" db:"text"`
	SentAt    time.Time `json:"sentAt" db:"sent_at"`
}

type SendMessageRequest struct {
	Text   string `json:"text" validate:"required"`
	Sender string `json:"-" validate:"required"`
}

type Stats struct {
	EventType string  `json:"eventType" db:"event_type"`
	Count     int     `json:"count" db:"count"`
	Turnover  float64 `json:"turnover" db:"turnover"`
}

// PaymentInfo is the counterparty's payment metadata, fetched from the
// external payment store. Settlement itself is not handled here.
type PaymentInfo struct {
	UserName     string `json:"username"`
	Method       string `json:"method"`
	MobileNumber string `json:"mobileNumber"`
}
