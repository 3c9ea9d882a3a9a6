package usecase

import (
	"strings"

	"dsr-service/internal/domain/entity"
	"dsr-service/pkg/utils"
)

// ListQuery carries the filters shared by every job list endpoint.
type ListQuery struct {
	Year           string
	Search         string
	Importer       string
	SelectedICD    string
	OblTelexBl     string
	Status         string
	DetailedStatus string
	Page           int
	Limit          int
}

// ListProfile describes one job list: which jobs belong to it and how they
// are ordered before pagination.
type ListProfile struct {
	Name     string
	Rules    func(q ListQuery) []FilterRule
	Rank     RankFunc
	TieBreak TieBreakFunc
}

// ProfileRouter resolves list profiles by name
type ProfileRouter interface {
	// Register registers a list profile under its name
	Register(profile ListProfile)

	// GetProfile returns the profile for name, or nil
	GetProfile(name string) *ListProfile
}

func pendingRules() []FilterRule {
	return []FilterRule{ExactCI("status", entity.JobPending), NotCancelled()}
}

// DefaultProfiles returns the job lists served by the API.
func DefaultProfiles() []ListProfile {
	return []ListProfile{
		{
			Name: "dsr",
			Rules: func(q ListQuery) []FilterRule {
				status := q.Status
				if strings.TrimSpace(status) == "" {
					status = entity.JobPending
				}
				rules := StatusRules(status)
				if !utils.IsPlaceholder(q.DetailedStatus) {
					rules = append(rules, Equals("detailed_status", q.DetailedStatus))
				}
				return rules
			},
			Rank:     RankByStatus,
			TieBreak: StatusTieBreak,
		},
		{
			Name: "documentation",
			Rules: func(q ListQuery) []FilterRule {
				return append(pendingRules(), Absent("documentation_completed_date_time"))
			},
			Rank: RankA,
		},
		{
			Name: "esanchit",
			Rules: func(q ListQuery) []FilterRule {
				return append(pendingRules(), Absent("esanchit_completed_date_time"))
			},
			Rank: RankA,
		},
		{
			Name: "submission",
			Rules: func(q ListQuery) []FilterRule {
				return append(pendingRules(),
					Present("esanchit_completed_date_time"),
					Present("documentation_completed_date_time"),
					Absent("be_no"),
				)
			},
			Rank: RankA,
		},
		{
			Name: "do",
			Rules: func(q ListQuery) []FilterRule {
				return append(pendingRules(), BeNoActive(), Absent("do_completed"))
			},
			Rank: RankB,
		},
		{
			Name: "billing",
			Rules: func(q ListQuery) []FilterRule {
				return []FilterRule{
					Equals("detailed_status", string(entity.StatusBillingPending)),
					Absent("bill_date"),
					NotCancelled(),
				}
			},
			TieBreak: FieldTieBreak("emptyContainerOffLoadDate"),
		},
	}
}
