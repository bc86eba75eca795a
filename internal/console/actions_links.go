package console

import (
	"fmt"
	"strings"

	"hnl-console/internal/database"
	"hnl-console/internal/models"

	"github.com/fatih/color"
)

func (c *Console) linkEventEntity() error {
	color.Cyan("Link Event to Entity (CREATE)")
	eventID, err := c.promptID("Event_ID")
	if err != nil {
		return err
	}
	entityID, err := c.promptID("Entity_ID")
	if err != nil {
		return err
	}
	start := parseOptionalTimestamp(c.prompt("Start_Time (YYYY-MM-DD HH:MM:SS)"))
	end := parseOptionalTimestamp(c.prompt("End_Time (YYYY-MM-DD HH:MM:SS)"))

	app, err := c.store.LinkEventEntity(eventID, entityID, start, end)
	if err != nil {
		return fmt.Errorf("linking event %d to entity %d: %w", eventID, entityID, err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "event", eventID, "link_entity",
		fmt.Sprintf("Linked entity %d (appearance %d)", entityID, app.ID))
	color.Green("Linked Entity %d to Event %d (Appearance ID: %d)", entityID, eventID, app.ID)
	return nil
}

func (c *Console) unlinkEventEntity() error {
	color.Cyan("Unlink Event from Entity")
	eventID, err := c.promptID("Event_ID")
	if err != nil {
		return err
	}
	entityID, err := c.promptID("Entity_ID")
	if err != nil {
		return err
	}
	drop := strings.EqualFold(c.promptDefault("Delete Entity_Appearance records too? (yes/no)", "no"), "yes")

	if err := c.store.UnlinkEventEntity(eventID, entityID, drop); err != nil {
		return fmt.Errorf("unlinking: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "event", eventID, "unlink_entity",
		fmt.Sprintf("Unlinked entity %d", entityID))
	color.Green("Unlinked Entity %d from Event %d", entityID, eventID)
	return nil
}

func (c *Console) linkArtifactEvent() error {
	color.Cyan("Link Artifact to Event (CREATE)")
	eventID, err := c.promptID("Event_ID")
	if err != nil {
		return err
	}
	artifactID, err := c.promptID("Artifact_ID")
	if err != nil {
		return err
	}

	if err := c.store.LinkEventArtifact(eventID, artifactID); err != nil {
		return fmt.Errorf("linking artifact %d to event %d: %w", artifactID, eventID, err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "event", eventID, "link_artifact",
		fmt.Sprintf("Linked artifact %d", artifactID))
	color.Green("Linked Artifact %d to Event %d", artifactID, eventID)
	return nil
}

func (c *Console) unlinkArtifactEvent() error {
	color.Cyan("Unlink Artifact from Event")
	eventID, err := c.promptID("Event_ID")
	if err != nil {
		return err
	}
	artifactID, err := c.promptID("Artifact_ID")
	if err != nil {
		return err
	}

	if err := c.store.UnlinkEventArtifact(eventID, artifactID); err != nil {
		return fmt.Errorf("unlinking: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "event", eventID, "unlink_artifact",
		fmt.Sprintf("Unlinked artifact %d", artifactID))
	color.Green("Unlinked Artifact %d from Event %d", artifactID, eventID)
	return nil
}

func (c *Console) addVictimToEvent() error {
	color.Cyan("Add Victim to Event (CREATE)")
	personID, err := c.promptID("Person_ID (victim)")
	if err != nil {
		return err
	}
	eventID, err := c.promptID("Event_ID")
	if err != nil {
		return err
	}
	severity := models.InjurySeverity(c.prompt("Injury_Severity (Minor/Moderate/Severe/Fatal)"))

	rec, err := c.store.AddVictimRecord(eventID, personID, severity)
	if err != nil {
		return fmt.Errorf("adding victim: %w", err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "event", eventID, "add_victim",
		fmt.Sprintf("Added victim %d (seq %d)", personID, rec.Seq))
	color.Green("Added Victim %d to Event %d (Seq: %d)", personID, eventID, rec.Seq)
	return nil
}

func (c *Console) removeVictimFromEvent() error {
	color.Cyan("Remove Victim from Event")
	eventID, err := c.promptID("Event_ID")
	if err != nil {
		return err
	}
	seqInput := c.prompt("Seq (or blank to use Person_ID)")

	if seqInput != "" {
		seq, err := parseID(seqInput)
		if err != nil {
			return err
		}
		if err := c.store.RemoveVictimRecord(eventID, seq); err != nil {
			return fmt.Errorf("removing victim: %w", err)
		}
	} else {
		personID, err := c.promptID("Person_ID")
		if err != nil {
			return err
		}
		if err := c.store.RemoveVictimByPerson(eventID, personID); err != nil {
			return fmt.Errorf("removing victim: %w", err)
		}
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "event", eventID, "remove_victim", "Removed victim record")
	color.Green("Victim removed from event")
	return nil
}
