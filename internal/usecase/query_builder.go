package usecase

import (
	"strings"

	"dsr-service/internal/domain/entity"
	"dsr-service/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterOp selects how a FilterRule turns into a Mongo clause.
type FilterOp int

const (
	// OpSearch is a case-insensitive substring match across Fields.
	OpSearch FilterOp = iota
	// OpExactCI is an anchored case-insensitive match on one field.
	OpExactCI
	// OpEquals is plain equality, used for the financial year.
	OpEquals
	// OpPresent requires a non-empty value.
	OpPresent
	// OpAbsent requires a missing, null or empty value.
	OpAbsent
	// OpIn requires the field to equal one of Values.
	OpIn
	// OpBeNoActive requires a be_no that is set and not "cancelled".
	OpBeNoActive
	// OpCancelled matches either cancellation encoding.
	OpCancelled
	// OpNotCancelled excludes both cancellation encodings.
	OpNotCancelled
)

// SearchFields are matched by the free-text search box.
var SearchFields = []string{
	"job_no",
	"year",
	"importer",
	"custom_house",
	"awb_bl_no",
	"be_no",
	"supplier_exporter",
	"shipping_line_airline",
	"type_of_b_e",
	"consignment_type",
	"container_nos.container_number",
	"container_nos.size",
}

// FilterRule is one declarative filter condition.
type FilterRule struct {
	Op     FilterOp
	Fields []string
	Value  string
	Values []string
}

func Search(value string, fields ...string) FilterRule {
	return FilterRule{Op: OpSearch, Fields: fields, Value: value}
}

func ExactCI(field, value string) FilterRule {
	return FilterRule{Op: OpExactCI, Fields: []string{field}, Value: value}
}

func Equals(field, value string) FilterRule {
	return FilterRule{Op: OpEquals, Fields: []string{field}, Value: value}
}

func Present(field string) FilterRule {
	return FilterRule{Op: OpPresent, Fields: []string{field}}
}

func Absent(field string) FilterRule {
	return FilterRule{Op: OpAbsent, Fields: []string{field}}
}

func In(field string, values ...string) FilterRule {
	return FilterRule{Op: OpIn, Fields: []string{field}, Values: values}
}

func BeNoActive() FilterRule   { return FilterRule{Op: OpBeNoActive} }
func Cancelled() FilterRule    { return FilterRule{Op: OpCancelled} }
func NotCancelled() FilterRule { return FilterRule{Op: OpNotCancelled} }

var cancelledRegex = primitive.Regex{Pattern: "^" + entity.BeNoCancelled + "$", Options: "i"}

// Clause renders the rule. ok is false when the rule carries an empty or
// placeholder value and should be skipped.
func (r FilterRule) Clause() (clause bson.M, ok bool) {
	switch r.Op {
	case OpSearch:
		term := strings.TrimSpace(r.Value)
		if term == "" || len(r.Fields) == 0 {
			return nil, false
		}
		pattern := utils.EscapeRegex(term)
		or := make([]bson.M, 0, len(r.Fields))
		for _, f := range r.Fields {
			or = append(or, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
		}
		return bson.M{"$or": or}, true

	case OpExactCI:
		if utils.IsPlaceholder(r.Value) {
			return nil, false
		}
		pattern := "^" + utils.EscapeRegex(strings.TrimSpace(r.Value)) + "$"
		return bson.M{r.Fields[0]: bson.M{"$regex": pattern, "$options": "i"}}, true

	case OpEquals:
		if strings.TrimSpace(r.Value) == "" {
			return nil, false
		}
		return bson.M{r.Fields[0]: r.Value}, true

	case OpPresent:
		return bson.M{r.Fields[0]: bson.M{"$exists": true, "$nin": bson.A{"", nil}}}, true

	case OpAbsent:
		return bson.M{"$or": []bson.M{
			{r.Fields[0]: bson.M{"$exists": false}},
			{r.Fields[0]: bson.M{"$in": bson.A{"", nil}}},
		}}, true

	case OpIn:
		if len(r.Values) == 0 {
			return nil, false
		}
		return bson.M{r.Fields[0]: bson.M{"$in": r.Values}}, true

	case OpBeNoActive:
		return bson.M{"be_no": bson.M{
			"$exists": true,
			"$nin":    bson.A{"", nil},
			"$not":    cancelledRegex,
		}}, true

	case OpCancelled:
		return bson.M{"$or": []bson.M{
			{"status": bson.M{"$regex": "^" + entity.JobCancelled + "$", "$options": "i"}},
			{"be_no": cancelledRegex},
		}}, true

	case OpNotCancelled:
		return bson.M{"$nor": []bson.M{
			{"status": bson.M{"$regex": "^" + entity.JobCancelled + "$", "$options": "i"}},
			{"be_no": cancelledRegex},
		}}, true
	}
	return nil, false
}

// BuildFilter ANDs every enabled rule together.
func BuildFilter(rules []FilterRule) bson.M {
	clauses := make([]bson.M, 0, len(rules))
	for _, r := range rules {
		if c, ok := r.Clause(); ok {
			clauses = append(clauses, c)
		}
	}
	if len(clauses) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": clauses}
}

// StatusRules expands a DSR status tab into rules. Pending and Completed
// exclude cancelled jobs; Cancelled matches either encoding.
func StatusRules(status string) []FilterRule {
	switch {
	case utils.EqualFold(status, entity.JobCancelled):
		return []FilterRule{Cancelled()}
	case utils.EqualFold(status, entity.JobCompleted):
		return []FilterRule{ExactCI("status", entity.JobCompleted), NotCancelled()}
	case utils.IsPlaceholder(status):
		return nil
	default:
		return []FilterRule{ExactCI("status", entity.JobPending), NotCancelled()}
	}
}
