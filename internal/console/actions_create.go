package console

import (
	"fmt"

	"hnl-console/internal/database"
	"hnl-console/internal/models"

	"github.com/fatih/color"
)

func (c *Console) insertEvent() error {
	color.Cyan("Insert new Event (CREATE)")
	date, err := parseDate(c.prompt("Date (YYYY-MM-DD)"))
	if err != nil {
		return err
	}
	timeStr := c.prompt("Time (HH:MM:SS)")
	description := c.prompt("Description")
	outcome := models.Outcome(c.promptDefault("Outcome (Contained/Ongoing/Catastrophic)", "Ongoing"))
	severity := models.Severity(c.promptDefault("Severity (Minor/Moderate/Severe)", "Moderate"))
	locationID := parseOptionalID(c.prompt("Location_ID (blank for NULL)"))
	portalID := parseOptionalID(c.prompt("(Optional) Portal_ID to set on event (blank for none)"))

	ev := models.Event{
		Date:        date,
		Time:        timeStr,
		Description: description,
		Outcome:     outcome,
		Severity:    severity,
		LocationID:  locationID,
		PortalID:    portalID,
	}
	if err := c.store.CreateEvent(&ev); err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "event", ev.ID, "create", "Inserted event")
	color.Green("Inserted Event ID %d", ev.ID)
	return nil
}

func (c *Console) createPerson() error {
	color.Cyan("Create Person (CREATE)")
	name := c.prompt("Name")
	role := models.PersonRole(c.prompt("Role (Researcher/Agent/Victim/Psychic_Subject)"))
	age := parseOptionalInt(c.prompt("Age (optional)"))
	affiliation := c.prompt("Affiliation")
	status := models.PersonStatus(c.promptDefault("Status (Active/Deceased/Missing)", "Active"))
	supervisorID := parseOptionalID(c.prompt("Supervisor_ID (blank for NULL)"))
	aliases := c.prompt("Known_Aliases (comma-separated, optional)")

	p := models.Person{
		Name:         name,
		Role:         role,
		Age:          age,
		Status:       status,
		Affiliation:  affiliation,
		SupervisorID: supervisorID,
		KnownAliases: aliases,
	}

	var sub interface{}
	switch role {
	case models.RoleResearcher:
		sub = &models.Researcher{ClearanceLevel: c.prompt("Clearance_Level")}
	case models.RoleAgent:
		sub = &models.Agent{SuccessRate: parseOptionalFloat(c.prompt("Success_Rate (0-100)"))}
	case models.RoleVictim:
		sub = &models.Victim{InjurySeverity: models.InjurySeverity(c.prompt("Injury_Severity"))}
	case models.RolePsychicSubject:
		sub = &models.PsychicSubject{
			AbilityType:  c.prompt("Ability_Type"),
			PowerLevel:   parseIntOr(c.prompt("Power_Level (0-100)"), 0),
			ControlScore: parseIntOr(c.prompt("Control_Score (0-100)"), 0),
		}
	default:
		return fmt.Errorf("unknown role %q", role)
	}

	if err := c.store.CreatePerson(&p, sub); err != nil {
		return fmt.Errorf("creating person: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "person", p.ID, "create", "Created person: "+p.Name)
	color.Green("Created Person ID %d (%s)", p.ID, role)
	return nil
}

func (c *Console) createArtifact() error {
	color.Cyan("Create Artifact (CREATE)")
	name := c.prompt("Name")
	artifactType := models.ArtifactType(c.promptDefault("Type (Biological/Metallic/Organic/Unknown)", "Unknown"))
	locationID := parseOptionalID(c.prompt("Found_At Location_ID (blank for NULL)"))
	anomaly := parseIntOr(c.prompt("Anomaly_Level (1-10)"), 0)

	a := models.Artifact{
		Name:         name,
		Type:         artifactType,
		AnomalyLevel: anomaly,
		FoundAtID:    locationID,
	}
	if err := c.store.CreateArtifact(&a); err != nil {
		return fmt.Errorf("creating artifact: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "artifact", a.ID, "create", "Created artifact: "+a.Name)
	color.Green("Created Artifact ID %d", a.ID)
	return nil
}

func (c *Console) createEntity() error {
	color.Cyan("Create Entity (CREATE)")
	name := c.prompt("Name")
	species := models.Species(c.prompt("Species (Monster/Shadow_Creature/Mind_Entity)"))
	threat := models.ThreatLevel(c.prompt("Threat_Level (Low/Medium/High/Critical)"))
	origin := models.WorldType(c.prompt("Origin_World (Normal/UpsideDown)"))
	firstSighting := parseOptionalDate(c.prompt("First_Sighting (YYYY-MM-DD)"))

	e := models.Entity{
		Name:          name,
		Species:       species,
		ThreatLevel:   threat,
		OriginWorld:   origin,
		FirstSighting: firstSighting,
	}

	var sub interface{}
	switch species {
	case models.SpeciesMonster:
		sub = &models.Monster{AggressionIndex: parseIntOr(c.prompt("Aggression_Index (0-100)"), 0)}
	case models.SpeciesShadowCreature:
		sub = &models.ShadowCreature{
			CorruptionLevel:   parseIntOr(c.prompt("Corruption_Level (0-100)"), 0),
			ManifestationType: c.prompt("Manifestation_Type"),
		}
	case models.SpeciesMindEntity:
		sub = &models.MindEntity{
			InfluenceRange:        parseIntOr(c.prompt("Influence_Range (0-100)"), 0),
			CognitiveLinkStrength: parseIntOr(c.prompt("Cognitive_Link_Strength (0-100)"), 0),
		}
	default:
		return fmt.Errorf("unknown species %q", species)
	}

	if err := c.store.CreateEntity(&e, sub); err != nil {
		return fmt.Errorf("creating entity: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "entity", e.ID, "create", "Created entity: "+e.Name)
	color.Green("Created Entity ID %d (%s)", e.ID, species)
	return nil
}

func (c *Console) createPortal() error {
	color.Cyan("Create Portal (CREATE)")
	name := c.prompt("Name")
	status := models.PortalStatus(c.promptDefault("Status (Active/Closed)", "Active"))
	originID := parseOptionalID(c.prompt("Has_Origin Location_ID"))
	destID := parseOptionalID(c.prompt("Has_Destination Location_ID"))
	discovered := parseOptionalDate(c.prompt("Discovered_On (YYYY-MM-DD)"))
	linksTo := parseOptionalID(c.prompt("Links_To Portal_ID (blank for NULL)"))
	coordX := parseOptionalFloat(c.prompt("Coordinate_X (optional, float)"))
	coordY := parseOptionalFloat(c.prompt("Coordinate_Y (optional, float)"))

	p := models.Portal{
		Name:          name,
		Status:        status,
		OriginID:      originID,
		DestinationID: destID,
		DiscoveredOn:  discovered,
		LinksToID:     linksTo,
		CoordinateX:   coordX,
		CoordinateY:   coordY,
	}
	if err := c.store.CreatePortal(&p); err != nil {
		return fmt.Errorf("creating portal: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "portal", p.ID, "create", "Created portal: "+p.Name)
	color.Green("Created Portal ID %d", p.ID)
	return nil
}

func (c *Console) createReport() error {
	color.Cyan("Create Report (CREATE)")
	date, err := parseDate(c.prompt("Date (YYYY-MM-DD)"))
	if err != nil {
		return err
	}
	authoredBy, err := c.promptID("Authored_By Person_ID")
	if err != nil {
		return err
	}
	verifiedBy := parseOptionalID(c.prompt("Verified_By Person_ID (blank for NULL)"))
	documents := parseOptionalID(c.prompt("Documents_Artifact Artifact_ID (blank for NULL)"))
	summary := c.prompt("Summary")
	verdict := models.Verdict(c.promptDefault("Verdict (True/False/Unclear)", "Unclear"))

	r := models.Report{
		Date:                date,
		AuthoredByID:        authoredBy,
		VerifiedByID:        verifiedBy,
		DocumentsArtifactID: documents,
	}
	detail := models.ReportDetail{Summary: summary, Verdict: verdict}
	if err := c.store.CreateReport(&r, &detail); err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "report", r.ID, "create", "Created report")
	color.Green("Created Report ID %d", r.ID)
	return nil
}

func (c *Console) createExperiment() error {
	color.Cyan("Create Experiment (CREATE)")
	purpose := c.prompt("Purpose")
	confidentiality := models.Confidentiality(c.promptDefault("Confidentiality (Low/Medium/High)", "High"))
	result := c.prompt("Result")
	date, err := parseDate(c.prompt("Date (YYYY-MM-DD)"))
	if err != nil {
		return err
	}
	conductedBy := parseOptionalID(c.prompt("Conducted_By Person_ID (blank for NULL)"))

	x := models.Experiment{
		Purpose:         purpose,
		Confidentiality: confidentiality,
		Result:          result,
		Date:            date,
		ConductedByID:   conductedBy,
	}
	if err := c.store.CreateExperiment(&x); err != nil {
		return fmt.Errorf("creating experiment: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "experiment", x.ID, "create", "Created experiment")
	color.Green("Created Experiment ID %d", x.ID)
	return nil
}
