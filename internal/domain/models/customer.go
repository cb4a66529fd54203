package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Customer is a milk subscription holder. PauseStart and PauseEnd hold an
// inclusive "2006-01-02" date range; either both are set or both are empty.
type Customer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Phone      string             `bson:"phone" json:"phone"`
	Address    string             `bson:"address" json:"address"`
	MilkLitres float64            `bson:"milkLitres" json:"milkLitres"`
	IsPaused   bool               `bson:"isPaused" json:"isPaused"`
	PauseStart string             `bson:"pauseStart,omitempty" json:"pauseStart,omitempty"`
	PauseEnd   string             `bson:"pauseEnd,omitempty" json:"pauseEnd,omitempty"`
	Payments   map[string]float64 `bson:"payments" json:"payments"`
}

// Delivery is one append-only row per customer per logged day. Quantities
// record what was actually delivered, not the subscription amount.
type Delivery struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID   string             `bson:"customerId" json:"customerId"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Date         string             `bson:"date" json:"date"`
	Milk         float64            `bson:"milk" json:"milk"`
	ExtraMilk    float64            `bson:"extraMilk" json:"extraMilk"`
	Egg          float64            `bson:"egg" json:"egg"`
	Curd         float64            `bson:"curd" json:"curd"`
	Chanakapodi  float64            `bson:"chanakapodi" json:"chanakapodi"`
}

// Transaction records an ad-hoc product sale. Rate is the unit rate resolved
// at write time; Date is authoritative for month bucketing regardless of when
// the document was created.
type Transaction struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID string             `bson:"customerId" json:"customerId"`
	Product    string             `bson:"product" json:"product"`
	Quantity   float64            `bson:"quantity" json:"quantity"`
	Rate       float64            `bson:"rate" json:"rate"`
	Date       string             `bson:"date" json:"date"`
}
