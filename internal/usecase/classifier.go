package usecase

import (
	"strings"

	"dsr-service/internal/domain/entity"
)

// Classify derives the lifecycle label of a job from its dates. Rules are
// checked from the most advanced stage down and the first match wins.
func Classify(job *entity.Job) entity.DetailedStatus {
	if job == nil {
		return entity.StatusETADatePending
	}

	hasBeNo := job.HasBeNo()
	anyArrival := anyContainer(job.ContainerNos, func(c entity.Container) bool { return c.ArrivalDate.Valid() })
	validOutOfCharge := job.OutOfCharge.Valid()

	isExBond := strings.EqualFold(strings.TrimSpace(job.TypeOfBE), entity.TypeOfBEExBond)
	var allCleared bool
	if isExBond {
		allCleared = allContainers(job.ContainerNos, func(c entity.Container) bool { return c.DeliveryDate.Valid() })
	} else {
		allCleared = allContainers(job.ContainerNos, func(c entity.Container) bool { return c.EmptyContainerOffLoadDate.Valid() })
	}

	switch {
	case hasBeNo && anyArrival && validOutOfCharge && allCleared:
		return entity.StatusBillingPending
	case hasBeNo && anyArrival && validOutOfCharge:
		return entity.StatusCustomClearanceCompleted
	case hasBeNo && anyArrival && job.PcvDate.Valid():
		return entity.StatusPCVDoneDutyPaymentPending
	case hasBeNo && anyArrival:
		return entity.StatusBENotedClearancePending
	case !hasBeNo && anyArrival:
		return entity.StatusArrivedBENotePending
	case hasBeNo:
		return entity.StatusBENotedArrivalPending
	case job.RailOutDate.Valid():
		return entity.StatusRailOut
	case job.DischargeDate.Valid():
		return entity.StatusDischarged
	case job.GatewayIgmDate.Valid():
		return entity.StatusGatewayIGMFiled
	case job.VesselBerthing.Valid():
		return entity.StatusEstimatedTimeOfArrival
	default:
		return entity.StatusETADatePending
	}
}

func anyContainer(containers []entity.Container, pred func(entity.Container) bool) bool {
	for _, c := range containers {
		if pred(c) {
			return true
		}
	}
	return false
}

// allContainers is false for an empty list.
func allContainers(containers []entity.Container, pred func(entity.Container) bool) bool {
	if len(containers) == 0 {
		return false
	}
	for _, c := range containers {
		if !pred(c) {
			return false
		}
	}
	return true
}
