package domain

import "time"

// Machine is a listed piece of farm equipment available for daily rental.
// Field names follow the machines collection contract; the document ID is
// carried separately in ID and never stored inside the document.
type Machine struct {
	ID             string    `firestore:"-" json:"id"`
	Name           string    `firestore:"name" json:"name"`
	MachineType    string    `firestore:"machineType" json:"machineType"`
	Description    string    `firestore:"description" json:"description"`
	PricePerDay    float64   `firestore:"pricePerDay" json:"pricePerDay"`
	ImageURL       string    `firestore:"imageUrl" json:"imageUrl"`
	OwnerFirstName string    `firestore:"ownerFirstName" json:"ownerFirstName"`
	OwnerLastName  string    `firestore:"ownerLastName" json:"ownerLastName"`
	OwnerEmail     string    `firestore:"ownerEmail" json:"ownerEmail"`
	OwnerPhone     string    `firestore:"ownerPhone" json:"ownerPhone"`
	OwnerID        string    `firestore:"ownerId" json:"ownerId"`
	CreatedAt      time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}
