package usecase

import (
	"context"
	"fmt"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"
	"dsr-service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// JobUpdate holds the lifecycle fields a client may change. Nil fields are
// left untouched.
type JobUpdate struct {
	VesselBerthing                 *string `json:"vessel_berthing"`
	GatewayIgmDate                 *string `json:"gateway_igm_date"`
	DischargeDate                  *string `json:"discharge_date"`
	RailOutDate                    *string `json:"rail_out_date"`
	BeNo                           *string `json:"be_no" validate:"omitempty,max=32"`
	BeDate                         *string `json:"be_date"`
	PcvDate                        *string `json:"pcv_date"`
	OutOfCharge                    *string `json:"out_of_charge"`
	BillDate                       *string `json:"bill_date"`
	DoCompleted                    *string `json:"do_completed"`
	EsanchitCompletedDateTime      *string `json:"esanchit_completed_date_time"`
	DocumentationCompletedDateTime *string `json:"documentation_completed_date_time"`
	Status                         *string `json:"status" validate:"omitempty,oneof=Pending Completed Cancelled"`
	PriorityJob                    *string `json:"priorityJob" validate:"omitempty,oneof='High Priority' Priority Normal"`
}

type updateField struct {
	name  string
	value func(u *JobUpdate) *string
	apply func(j *entity.Job, v string)
}

func dateField(name string, value func(u *JobUpdate) *string, target func(j *entity.Job) *entity.LooseDate) updateField {
	return updateField{
		name:  name,
		value: value,
		apply: func(j *entity.Job, v string) { *target(j) = entity.NewLooseDate(v) },
	}
}

var updateFields = []updateField{
	dateField("vessel_berthing", func(u *JobUpdate) *string { return u.VesselBerthing }, func(j *entity.Job) *entity.LooseDate { return &j.VesselBerthing }),
	dateField("gateway_igm_date", func(u *JobUpdate) *string { return u.GatewayIgmDate }, func(j *entity.Job) *entity.LooseDate { return &j.GatewayIgmDate }),
	dateField("discharge_date", func(u *JobUpdate) *string { return u.DischargeDate }, func(j *entity.Job) *entity.LooseDate { return &j.DischargeDate }),
	dateField("rail_out_date", func(u *JobUpdate) *string { return u.RailOutDate }, func(j *entity.Job) *entity.LooseDate { return &j.RailOutDate }),
	dateField("be_date", func(u *JobUpdate) *string { return u.BeDate }, func(j *entity.Job) *entity.LooseDate { return &j.BeDate }),
	dateField("pcv_date", func(u *JobUpdate) *string { return u.PcvDate }, func(j *entity.Job) *entity.LooseDate { return &j.PcvDate }),
	dateField("out_of_charge", func(u *JobUpdate) *string { return u.OutOfCharge }, func(j *entity.Job) *entity.LooseDate { return &j.OutOfCharge }),
	dateField("bill_date", func(u *JobUpdate) *string { return u.BillDate }, func(j *entity.Job) *entity.LooseDate { return &j.BillDate }),
	dateField("do_completed", func(u *JobUpdate) *string { return u.DoCompleted }, func(j *entity.Job) *entity.LooseDate { return &j.DoCompleted }),
	dateField("esanchit_completed_date_time", func(u *JobUpdate) *string { return u.EsanchitCompletedDateTime }, func(j *entity.Job) *entity.LooseDate { return &j.EsanchitCompletedDateTime }),
	dateField("documentation_completed_date_time", func(u *JobUpdate) *string { return u.DocumentationCompletedDateTime }, func(j *entity.Job) *entity.LooseDate { return &j.DocumentationCompletedDateTime }),
	{name: "be_no", value: func(u *JobUpdate) *string { return u.BeNo }, apply: func(j *entity.Job, v string) { j.BeNo = v }},
	{name: "status", value: func(u *JobUpdate) *string { return u.Status }, apply: func(j *entity.Job, v string) { j.Status = v }},
	{name: "priorityJob", value: func(u *JobUpdate) *string { return u.PriorityJob }, apply: func(j *entity.Job, v string) { j.PriorityJob = v }},
}

// JobService reads single jobs and applies lifecycle updates
type JobService struct {
	jobRepo repository.JobRepository
	logger  logger.Logger
}

// NewJobService creates a new job service
func NewJobService(jobRepo repository.JobRepository, logger logger.Logger) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// Get returns one job by its year and job number.
func (s *JobService) Get(ctx context.Context, year, jobNo string) (*entity.Job, error) {
	return s.jobRepo.FindByJobNo(ctx, year, jobNo)
}

// Update applies u, reclassifies the job and writes the changed fields and
// the new detailed_status in one update.
func (s *JobService) Update(ctx context.Context, year, jobNo string, u *JobUpdate) (*entity.Job, error) {
	job, err := s.jobRepo.FindByJobNo(ctx, year, jobNo)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	for _, f := range updateFields {
		v := f.value(u)
		if v == nil {
			continue
		}
		f.apply(job, *v)
		set[f.name] = *v
	}

	set["detailed_status"] = Classify(job)

	updated, err := s.jobRepo.UpdateFields(ctx, job.ID, set)
	if err != nil {
		return nil, fmt.Errorf("failed to update job %s/%s: %w", year, jobNo, err)
	}

	// Another update may have landed between the read and the write; the
	// stored label must follow the stored dates.
	if status := Classify(updated); status != updated.DetailedStatus {
		updated, err = s.jobRepo.UpdateFields(ctx, job.ID, bson.M{"detailed_status": status})
		if err != nil {
			return nil, fmt.Errorf("failed to relabel job %s/%s: %w", year, jobNo, err)
		}
	}

	s.logger.Info("Job updated", "year", year, "jobNo", jobNo, "detailedStatus", updated.DetailedStatus, "fields", len(set)-1)
	return updated, nil
}
