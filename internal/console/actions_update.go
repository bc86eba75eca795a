package console

import (
	"fmt"

	"hnl-console/internal/database"
	"hnl-console/internal/models"

	"github.com/fatih/color"
)

func describeID(id *uint) string {
	if id == nil {
		return "NULL"
	}
	return fmt.Sprintf("%d", *id)
}

func (c *Console) updateEvent() error {
	color.Cyan("Update Event (UPDATE)")
	id, err := c.promptID("Event_ID")
	if err != nil {
		return err
	}
	ev, err := c.store.GetEvent(id)
	if err != nil {
		return fmt.Errorf("event %d: %w", id, err)
	}

	fmt.Printf("Current: [%d] %s %s [%s/%s] portal=%s location=%s\n",
		ev.ID, ev.Date.Format("2006-01-02"), ev.Time, ev.Severity, ev.Outcome,
		describeID(ev.PortalID), describeID(ev.LocationID))

	ev.Outcome = models.Outcome(c.promptDefault("Outcome", string(ev.Outcome)))
	ev.Severity = models.Severity(c.promptDefault("Severity", string(ev.Severity)))
	ev.PortalID = applyIDInput(c.prompt(fmt.Sprintf("Portal_ID [%s] (blank to keep, NULL to clear)", describeID(ev.PortalID))), ev.PortalID)
	ev.LocationID = applyIDInput(c.prompt(fmt.Sprintf("Location_ID [%s] (blank to keep, NULL to clear)", describeID(ev.LocationID))), ev.LocationID)
	ev.Location = nil
	ev.Portal = nil

	if err := c.store.UpdateEvent(ev); err != nil {
		return fmt.Errorf("updating event: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "event", ev.ID, "update", "Updated event")
	color.Green("Event %d updated", ev.ID)
	return nil
}

func (c *Console) updatePortal() error {
	color.Cyan("Update Portal Status (UPDATE)")
	id, err := c.promptID("Portal_ID")
	if err != nil {
		return err
	}
	p, err := c.store.GetPortal(id)
	if err != nil {
		return fmt.Errorf("portal %d: %w", id, err)
	}

	fmt.Printf("Before: [%d] %s status=%s links_to=%s\n", p.ID, p.Name, p.Status, describeID(p.LinksToID))

	p.Status = models.PortalStatus(c.promptDefault("New status (Active/Closed)", string(p.Status)))
	p.LinksToID = applyIDInput(c.prompt("Links_To Portal_ID (blank to keep, NULL to clear)"), p.LinksToID)
	p.CoordinateX = applyFloatInput(c.prompt("Coordinate_X (blank to keep)"), p.CoordinateX)
	p.CoordinateY = applyFloatInput(c.prompt("Coordinate_Y (blank to keep)"), p.CoordinateY)
	p.Origin = nil
	p.Destination = nil

	if err := c.store.UpdatePortal(p); err != nil {
		return fmt.Errorf("updating portal: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "portal", p.ID, "update", "Updated portal status: "+string(p.Status))
	color.Green("Portal %d updated to %s", p.ID, p.Status)
	return nil
}

func (c *Console) updatePerson() error {
	color.Cyan("Update Person (UPDATE)")
	id, err := c.promptID("Person_ID")
	if err != nil {
		return err
	}
	p, err := c.store.GetPerson(id)
	if err != nil {
		return fmt.Errorf("person %d: %w", id, err)
	}

	fmt.Printf("Current: [%d] %s role=%s status=%s affiliation=%s\n", p.ID, p.Name, p.Role, p.Status, p.Affiliation)

	p.Affiliation = c.promptDefault("Affiliation", p.Affiliation)
	p.Status = models.PersonStatus(c.promptDefault("Status", string(p.Status)))
	if aliases := c.prompt(fmt.Sprintf("Known_Aliases [%s] (blank to keep)", p.KnownAliases)); aliases != "" {
		p.KnownAliases = aliases
	}
	p.SupervisorID = applyIDInput(c.prompt(fmt.Sprintf("Supervisor_ID [%s] (blank to keep, NULL to clear)", describeID(p.SupervisorID))), p.SupervisorID)

	newRole := models.PersonRole(c.promptDefault("Role", string(p.Role)))
	if newRole != p.Role {
		color.Yellow("Role change detected. Subclass tables may need manual review.")
		p.Role = newRole
	}
	p.Supervisor = nil

	if err := c.store.UpdatePerson(p); err != nil {
		return fmt.Errorf("updating person: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "person", p.ID, "update", "Updated person: "+p.Name)
	color.Green("Person %d updated", p.ID)
	return nil
}

func (c *Console) updateEntity() error {
	color.Cyan("Update Entity (UPDATE)")
	id, err := c.promptID("Entity_ID")
	if err != nil {
		return err
	}
	e, err := c.store.GetEntity(id)
	if err != nil {
		return fmt.Errorf("entity %d: %w", id, err)
	}

	fmt.Printf("Current: [%d] %s threat=%s\n", e.ID, e.Name, e.ThreatLevel)

	wasCritical := e.ThreatLevel == models.ThreatCritical
	e.Name = c.promptDefault("Name", e.Name)
	e.ThreatLevel = models.ThreatLevel(c.promptDefault("Threat_Level", string(e.ThreatLevel)))

	if err := c.store.UpdateEntity(e); err != nil {
		return fmt.Errorf("updating entity: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "entity", e.ID, "update", "Updated entity: "+e.Name)
	color.Green("Entity %d updated", e.ID)
	if e.ThreatLevel == models.ThreatCritical && !wasCritical {
		color.Red("Threat escalated to Critical - immediate action recommended!")
	}
	return nil
}

func (c *Console) updateArtifact() error {
	color.Cyan("Update Artifact (UPDATE)")
	id, err := c.promptID("Artifact_ID")
	if err != nil {
		return err
	}
	a, err := c.store.GetArtifact(id)
	if err != nil {
		return fmt.Errorf("artifact %d: %w", id, err)
	}

	fmt.Printf("Current: [%d] %s anomaly=%d found_at=%s\n", a.ID, a.Name, a.AnomalyLevel, describeID(a.FoundAtID))

	a.FoundAtID = applyIDInput(c.prompt("Found_At Location_ID (blank to keep, NULL to clear)"), a.FoundAtID)
	if v := parseOptionalInt(c.prompt(fmt.Sprintf("Anomaly_Level [%d] (blank to keep)", a.AnomalyLevel))); v != nil {
		a.AnomalyLevel = *v
	}
	a.FoundAt = nil

	if err := c.store.UpdateArtifact(a); err != nil {
		return fmt.Errorf("updating artifact: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "artifact", a.ID, "update", "Updated artifact: "+a.Name)
	color.Green("Artifact %d updated", a.ID)
	if a.AnomalyLevel > 8 {
		color.Red("High anomaly level detected - alert report recommended!")
	}
	return nil
}
