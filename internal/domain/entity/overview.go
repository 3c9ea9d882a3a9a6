package entity

// OverviewCounters is the dashboard summary for one financial year.
type OverviewCounters struct {
	TotalJobs     int64 `json:"totalJobs" bson:"totalJobs"`
	PendingJobs   int64 `json:"pendingJobs" bson:"pendingJobs"`
	CompletedJobs int64 `json:"completedJobs" bson:"completedJobs"`
	CancelledJobs int64 `json:"cancelledJobs" bson:"cancelledJobs"`

	ETADatePending            int64 `json:"etaDatePending" bson:"etaDatePending"`
	EstimatedTimeOfArrival    int64 `json:"estimatedTimeOfArrival" bson:"estimatedTimeOfArrival"`
	GatewayIGMFiled           int64 `json:"gatewayIgmFiled" bson:"gatewayIgmFiled"`
	Discharged                int64 `json:"discharged" bson:"discharged"`
	RailOut                   int64 `json:"railOut" bson:"railOut"`
	BENotedArrivalPending     int64 `json:"beNotedArrivalPending" bson:"beNotedArrivalPending"`
	ArrivedBENotePending      int64 `json:"arrivedBeNotePending" bson:"arrivedBeNotePending"`
	BENotedClearancePending   int64 `json:"beNotedClearancePending" bson:"beNotedClearancePending"`
	PCVDoneDutyPaymentPending int64 `json:"pcvDoneDutyPaymentPending" bson:"pcvDoneDutyPaymentPending"`
	CustomClearanceCompleted  int64 `json:"customClearanceCompleted" bson:"customClearanceCompleted"`
	BillingPending            int64 `json:"billingPending" bson:"billingPending"`

	TodayJobCreateImport int64 `json:"todayJobCreateImport" bson:"todayJobCreateImport"`
	TodayJobArrivalDate  int64 `json:"todayJobArrivalDate" bson:"todayJobArrivalDate"`
	TodayJobBeDate       int64 `json:"todayJobBeDate" bson:"todayJobBeDate"`
	TodayJobPcv          int64 `json:"todayJobPcv" bson:"todayJobPcv"`
	TodayJobOutOfCharge  int64 `json:"todayJobOutOfCharge" bson:"todayJobOutOfCharge"`
}

// StatusCounterKeys maps each detailed status to its counter field name.
var StatusCounterKeys = map[DetailedStatus]string{
	StatusETADatePending:            "etaDatePending",
	StatusEstimatedTimeOfArrival:    "estimatedTimeOfArrival",
	StatusGatewayIGMFiled:           "gatewayIgmFiled",
	StatusDischarged:                "discharged",
	StatusRailOut:                   "railOut",
	StatusBENotedArrivalPending:     "beNotedArrivalPending",
	StatusArrivedBENotePending:      "arrivedBeNotePending",
	StatusBENotedClearancePending:   "beNotedClearancePending",
	StatusPCVDoneDutyPaymentPending: "pcvDoneDutyPaymentPending",
	StatusCustomClearanceCompleted:  "customClearanceCompleted",
	StatusBillingPending:            "billingPending",
}
