package store

import (
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"hnl-console/internal/models"
)

// SearchResults groups cross-table matches for one query.
type SearchResults struct {
	Entities    []models.Entity
	Locations   []models.Location
	Events      []models.Event
	Persons     []models.Person
	Portals     []models.Portal
	Artifacts   []models.Artifact
	Reports     []ReportHit
	Experiments []models.Experiment
}

type ReportHit struct {
	ReportID uint
	Date     string
	Summary  string
	Verdict  string
}

func (r SearchResults) Empty() bool {
	return len(r.Entities) == 0 && len(r.Locations) == 0 && len(r.Events) == 0 &&
		len(r.Persons) == 0 && len(r.Portals) == 0 && len(r.Artifacts) == 0 &&
		len(r.Reports) == 0 && len(r.Experiments) == 0
}

const searchLimit = 20

// GlobalSearch scans multiple text columns per table; a purely numeric query
// additionally matches primary keys.
func (s *Store) GlobalSearch(query string) (*SearchResults, error) {
	like := "%" + query + "%"
	var id *uint64
	if n, err := strconv.ParseUint(query, 10, 64); err == nil {
		id = &n
	}

	// textual OR-clause over the given columns, plus the optional ID match
	match := func(idCol string, cols ...string) sq.Or {
		or := sq.Or{}
		for _, col := range cols {
			or = append(or, sq.Like{col: like})
		}
		if id != nil {
			or = append(or, sq.Eq{idCol: *id})
		}
		return or
	}

	run := func(b sq.SelectBuilder, dest interface{}) error {
		query, args, err := b.Limit(searchLimit).ToSql()
		if err != nil {
			return err
		}
		return s.db.Raw(query, args...).Scan(dest).Error
	}

	var res SearchResults

	if err := run(sq.Select("*").From("entities").
		Where(match("id", "name", "species", "threat_level", "origin_world")),
		&res.Entities); err != nil {
		return nil, s.count("search", wrapErr(err))
	}
	if err := run(sq.Select("*").From("locations").
		Where(match("id", "name", "world_type", "description")),
		&res.Locations); err != nil {
		return nil, s.count("search", wrapErr(err))
	}
	if err := run(sq.Select("*").From("events").
		Where(match("id", "description", "outcome", "severity")),
		&res.Events); err != nil {
		return nil, s.count("search", wrapErr(err))
	}
	if err := run(sq.Select("*").From("people").
		Where(match("id", "name", "role", "status", "affiliation", "known_aliases")),
		&res.Persons); err != nil {
		return nil, s.count("search", wrapErr(err))
	}
	if err := run(sq.Select("*").From("portals").
		Where(match("id", "name", "status")),
		&res.Portals); err != nil {
		return nil, s.count("search", wrapErr(err))
	}
	if err := run(sq.Select("*").From("artifacts").
		Where(match("id", "name", "type")),
		&res.Artifacts); err != nil {
		return nil, s.count("search", wrapErr(err))
	}
	if err := run(sq.Select(
		"reports.id AS report_id", "reports.date AS date",
		"report_details.summary AS summary", "report_details.verdict AS verdict").
		From("reports").
		LeftJoin("report_details ON report_details.report_id = reports.id").
		Where(match("reports.id", "report_details.summary", "report_details.verdict")),
		&res.Reports); err != nil {
		return nil, s.count("search", wrapErr(err))
	}
	if err := run(sq.Select("*").From("experiments").
		Where(match("id", "purpose", "result", "confidentiality")),
		&res.Experiments); err != nil {
		return nil, s.count("search", wrapErr(err))
	}

	return &res, s.count("search", nil)
}
