package entity

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DetailedStatus is the lifecycle label derived from a job's dates.
type DetailedStatus string

const (
	StatusETADatePending            DetailedStatus = "ETA Date Pending"
	StatusEstimatedTimeOfArrival    DetailedStatus = "Estimated Time of Arrival"
	StatusGatewayIGMFiled           DetailedStatus = "Gateway IGM Filed"
	StatusDischarged                DetailedStatus = "Discharged"
	StatusRailOut                   DetailedStatus = "Rail Out"
	StatusBENotedArrivalPending     DetailedStatus = "BE Noted, Arrival Pending"
	StatusArrivedBENotePending      DetailedStatus = "Arrived, BE Note Pending"
	StatusBENotedClearancePending   DetailedStatus = "BE Noted, Clearance Pending"
	StatusPCVDoneDutyPaymentPending DetailedStatus = "PCV Done, Duty Payment Pending"
	StatusCustomClearanceCompleted  DetailedStatus = "Custom Clearance Completed"
	StatusBillingPending            DetailedStatus = "Billing Pending"
)

// DetailedStatuses lists every label in lifecycle order.
var DetailedStatuses = []DetailedStatus{
	StatusETADatePending,
	StatusEstimatedTimeOfArrival,
	StatusGatewayIGMFiled,
	StatusDischarged,
	StatusRailOut,
	StatusBENotedArrivalPending,
	StatusArrivedBENotePending,
	StatusBENotedClearancePending,
	StatusPCVDoneDutyPaymentPending,
	StatusCustomClearanceCompleted,
	StatusBillingPending,
}

// Job status values
const (
	JobPending   = "Pending"
	JobCompleted = "Completed"
	JobCancelled = "Cancelled"
)

// Priority flags
const (
	HighPriority = "High Priority"
	Priority     = "Priority"
)

// BeNoCancelled is the be_no value that marks a job as cancelled.
const BeNoCancelled = "cancelled"

const TypeOfBEExBond = "Ex-Bond"

// Job is one import shipment tracked through customs clearance.
type Job struct {
	ID                             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	JobNo                          string             `json:"job_no" bson:"job_no"`
	Year                           string             `json:"year" bson:"year"`
	JobDate                        LooseDate          `json:"job_date" bson:"job_date"`
	Importer                       string             `json:"importer" bson:"importer"`
	CustomHouse                    string             `json:"custom_house" bson:"custom_house"`
	AwbBlNo                        string             `json:"awb_bl_no" bson:"awb_bl_no"`
	AwbBlDate                      LooseDate          `json:"awb_bl_date" bson:"awb_bl_date"`
	SupplierExporter               string             `json:"supplier_exporter" bson:"supplier_exporter"`
	ShippingLineAirline            string             `json:"shipping_line_airline" bson:"shipping_line_airline"`
	ConsignmentType                string             `json:"consignment_type" bson:"consignment_type"`
	TypeOfBE                       string             `json:"type_of_b_e" bson:"type_of_b_e"`
	OblTelexBl                     string             `json:"obl_telex_bl" bson:"obl_telex_bl"`
	BeNo                           string             `json:"be_no" bson:"be_no"`
	BeDate                         LooseDate          `json:"be_date" bson:"be_date"`
	Status                         string             `json:"status" bson:"status"`
	DetailedStatus                 DetailedStatus     `json:"detailed_status" bson:"detailed_status"`
	PriorityJob                    string             `json:"priorityJob" bson:"priorityJob"`
	VesselBerthing                 LooseDate          `json:"vessel_berthing" bson:"vessel_berthing"`
	GatewayIgmDate                 LooseDate          `json:"gateway_igm_date" bson:"gateway_igm_date"`
	DischargeDate                  LooseDate          `json:"discharge_date" bson:"discharge_date"`
	RailOutDate                    LooseDate          `json:"rail_out_date" bson:"rail_out_date"`
	PcvDate                        LooseDate          `json:"pcv_date" bson:"pcv_date"`
	OutOfCharge                    LooseDate          `json:"out_of_charge" bson:"out_of_charge"`
	BillDate                       LooseDate          `json:"bill_date" bson:"bill_date"`
	DoCompleted                    LooseDate          `json:"do_completed" bson:"do_completed"`
	EsanchitCompletedDateTime      LooseDate          `json:"esanchit_completed_date_time" bson:"esanchit_completed_date_time"`
	DocumentationCompletedDateTime LooseDate          `json:"documentation_completed_date_time" bson:"documentation_completed_date_time"`
	CompletedOperationDate         LooseDate          `json:"completed_operation_date" bson:"completed_operation_date"`
	ContainerNos                   []Container        `json:"container_nos" bson:"container_nos"`
	CthDocuments                   []Document         `json:"cth_documents,omitempty" bson:"cth_documents,omitempty"`
	AllDocuments                   []string           `json:"all_documents,omitempty" bson:"all_documents,omitempty"`
	Checklist                      []string           `json:"checklist,omitempty" bson:"checklist,omitempty"`
}

// Container is one container on a job's bill of lading.
type Container struct {
	ContainerNumber           string           `json:"container_number" bson:"container_number"`
	Size                      string           `json:"size" bson:"size"`
	ArrivalDate               LooseDate        `json:"arrival_date" bson:"arrival_date"`
	DetentionFrom             LooseDate        `json:"detention_from" bson:"detention_from"`
	DeliveryDate              LooseDate        `json:"delivery_date" bson:"delivery_date"`
	EmptyContainerOffLoadDate LooseDate        `json:"emptyContainerOffLoadDate" bson:"emptyContainerOffLoadDate"`
	DoRevalidation            []DoRevalidation `json:"do_revalidation,omitempty" bson:"do_revalidation,omitempty"`
}

type DoRevalidation struct {
	DoRevalidationUpto      string `json:"do_revalidation_upto" bson:"do_revalidation_upto"`
	Remarks                 string `json:"remarks" bson:"remarks"`
	DoRevalidationCompleted bool   `json:"do_Revalidation_Completed" bson:"do_Revalidation_Completed"`
}

type Document struct {
	DocumentName string   `json:"document_name" bson:"document_name"`
	DocumentCode string   `json:"document_code" bson:"document_code"`
	URL          []string `json:"url" bson:"url"`
}

// HasBeNo reports whether a real bill of entry number is recorded.
func (j *Job) HasBeNo() bool {
	be := strings.TrimSpace(j.BeNo)
	return be != "" && !strings.EqualFold(be, BeNoCancelled)
}

// IsCancelled covers both encodings of cancellation: the status field and a
// be_no of "cancelled".
func (j *Job) IsCancelled() bool {
	return strings.EqualFold(strings.TrimSpace(j.Status), JobCancelled) ||
		strings.EqualFold(strings.TrimSpace(j.BeNo), BeNoCancelled)
}

// FirstContainer returns the first container or nil.
func (j *Job) FirstContainer() *Container {
	if len(j.ContainerNos) == 0 {
		return nil
	}
	return &j.ContainerNos[0]
}
