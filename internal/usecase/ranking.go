package usecase

import (
	"sort"

	"dsr-service/internal/domain/entity"
)

// RankFunc assigns a sort rank to a job; lower ranks sort first.
type RankFunc func(job *entity.Job) int

// TieBreakFunc picks the date used to order jobs of equal rank.
type TieBreakFunc func(job *entity.Job) entity.LooseDate

// RankA is used by the documentation and e-Sanchit lists.
func RankA(job *entity.Job) int {
	switch job.PriorityJob {
	case entity.HighPriority:
		return 1
	case entity.Priority:
		return 2
	}
	switch job.DetailedStatus {
	case entity.StatusDischarged:
		return 3
	case entity.StatusGatewayIGMFiled:
		return 4
	}
	return 5
}

// RankB is used by the DO team list and ignores the lifecycle stage.
func RankB(job *entity.Job) int {
	switch job.PriorityJob {
	case entity.HighPriority:
		return 1
	case entity.Priority:
		return 2
	}
	return 3
}

// StatusRank is one row of the report ordering table.
type StatusRank struct {
	Status        entity.DetailedStatus
	Rank          int
	TieBreakField string
}

// StatusRankTable orders jobs for the DSR list and report download.
var StatusRankTable = []StatusRank{
	{entity.StatusBillingPending, 1, "emptyContainerOffLoadDate"},
	{entity.StatusCustomClearanceCompleted, 2, "detention_from"},
	{entity.StatusPCVDoneDutyPaymentPending, 3, "detention_from"},
	{entity.StatusBENotedClearancePending, 4, "detention_from"},
	{entity.StatusBENotedArrivalPending, 5, "be_date"},
	{entity.StatusArrivedBENotePending, 6, "be_date"},
	{entity.StatusRailOut, 7, "rail_out"},
	{entity.StatusDischarged, 8, "discharge_date"},
	{entity.StatusGatewayIGMFiled, 9, "gateway_igm_date"},
	{entity.StatusEstimatedTimeOfArrival, 10, "vessel_berthing"},
}

var statusRankIndex = func() map[entity.DetailedStatus]StatusRank {
	m := make(map[entity.DetailedStatus]StatusRank, len(StatusRankTable))
	for _, row := range StatusRankTable {
		m[row.Status] = row
	}
	return m
}()

// RankByStatus ranks by the status table; statuses outside it sort last.
func RankByStatus(job *entity.Job) int {
	if row, ok := statusRankIndex[job.DetailedStatus]; ok {
		return row.Rank
	}
	return len(StatusRankTable) + 1
}

// StatusTieBreak reads the tie-break date configured for the job's status.
func StatusTieBreak(job *entity.Job) entity.LooseDate {
	row, ok := statusRankIndex[job.DetailedStatus]
	if !ok {
		return entity.LooseDate{}
	}
	return DateField(job, row.TieBreakField)
}

// FieldTieBreak returns a tie-break on a fixed date field.
func FieldTieBreak(field string) TieBreakFunc {
	return func(job *entity.Job) entity.LooseDate {
		return DateField(job, field)
	}
}

// DateField resolves a date by its stored field name. Container-level fields
// are read from the first container.
func DateField(job *entity.Job, field string) entity.LooseDate {
	switch field {
	case "vessel_berthing":
		return job.VesselBerthing
	case "gateway_igm_date":
		return job.GatewayIgmDate
	case "discharge_date":
		return job.DischargeDate
	case "rail_out", "rail_out_date":
		return job.RailOutDate
	case "be_date":
		return job.BeDate
	case "pcv_date":
		return job.PcvDate
	case "out_of_charge":
		return job.OutOfCharge
	case "bill_date":
		return job.BillDate
	case "job_date":
		return job.JobDate
	case "detention_from":
		if c := job.FirstContainer(); c != nil {
			return c.DetentionFrom
		}
	case "emptyContainerOffLoadDate":
		if c := job.FirstContainer(); c != nil {
			return c.EmptyContainerOffLoadDate
		}
	case "arrival_date":
		if c := job.FirstContainer(); c != nil {
			return c.ArrivalDate
		}
	}
	return entity.LooseDate{}
}

// SortJobs orders jobs by rank, then by tie-break date ascending with
// missing or unparseable dates last. Equal keys keep their input order.
func SortJobs(jobs []*entity.Job, rank RankFunc, tieBreak TieBreakFunc) {
	if rank == nil && tieBreak == nil {
		return
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		if rank != nil {
			ri, rj := rank(jobs[i]), rank(jobs[j])
			if ri != rj {
				return ri < rj
			}
		}
		if tieBreak == nil {
			return false
		}
		return dateBefore(tieBreak(jobs[i]), tieBreak(jobs[j]))
	})
}

func dateBefore(a, b entity.LooseDate) bool {
	ta, okA := a.Time()
	tb, okB := b.Time()
	switch {
	case okA && okB:
		return ta.Before(tb)
	case okA:
		return true
	default:
		return false
	}
}
