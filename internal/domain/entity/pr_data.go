package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrData is a transport requisition with the containers moved under it.
type PrData struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PrNo          string             `json:"pr_no" bson:"pr_no"`
	PrDate        LooseDate          `json:"pr_date" bson:"pr_date"`
	Branch        string             `json:"branch" bson:"branch"`
	Consignor     string             `json:"consignor" bson:"consignor"`
	Consignee     string             `json:"consignee" bson:"consignee"`
	ContainerType string             `json:"container_type" bson:"container_type"`
	GoodsPickup   string             `json:"goods_pickup" bson:"goods_pickup"`
	GoodsDelivery string             `json:"goods_delivery" bson:"goods_delivery"`
	ImportExport  string             `json:"import_export" bson:"import_export"`
	Containers    []PrContainer      `json:"containers" bson:"containers"`

	// ElockDocs carries the $lookup result until it is attached to containers.
	ElockDocs []Elock `json:"-" bson:"elock_docs,omitempty"`
}

// PrContainer is one container movement and its lorry receipt state.
type PrContainer struct {
	ContainerNumber string              `json:"container_number" bson:"container_number"`
	Size            string              `json:"size" bson:"size"`
	TrNo            string              `json:"tr_no" bson:"tr_no"`
	VehicleNo       string              `json:"vehicle_no" bson:"vehicle_no"`
	DriverName      string              `json:"driver_name" bson:"driver_name"`
	DriverPhone     string              `json:"driver_phone" bson:"driver_phone"`
	ElockID         *primitive.ObjectID `json:"elock_id,omitempty" bson:"elock,omitempty"`
	Elock           *Elock              `json:"elock,omitempty" bson:"-"`
	LrCompleted     bool                `json:"lr_completed" bson:"lr_completed"`
}

// Elock is an electronic container lock from the elocks directory.
type Elock struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	ElockNo string             `json:"elock_no" bson:"elock_no"`
	Status  string             `json:"status" bson:"status"`
}

// AttachElocks resolves each container's elock reference from ElockDocs.
func (p *PrData) AttachElocks() {
	if len(p.ElockDocs) == 0 {
		return
	}
	byID := make(map[primitive.ObjectID]*Elock, len(p.ElockDocs))
	for i := range p.ElockDocs {
		byID[p.ElockDocs[i].ID] = &p.ElockDocs[i]
	}
	for i := range p.Containers {
		if ref := p.Containers[i].ElockID; ref != nil {
			p.Containers[i].Elock = byID[*ref]
		}
	}
	p.ElockDocs = nil
}
