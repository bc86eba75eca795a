package console

import (
	"fmt"

	"hnl-console/internal/database"

	"github.com/fatih/color"
)

func (c *Console) archiveEvent() error {
	color.Cyan("Archive Event")
	id, err := c.promptID("Event_ID")
	if err != nil {
		return err
	}
	reason := c.prompt("Archive reason")

	if err := c.store.ArchiveEvent(id, reason); err != nil {
		return fmt.Errorf("archiving event %d: %w", id, err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "event", id, "archive", "Archived: "+reason)
	color.Green("Event %d archived", id)
	return nil
}

func (c *Console) archivePerson() error {
	color.Cyan("Archive Person")
	id, err := c.promptID("Person_ID")
	if err != nil {
		return err
	}
	reason := c.prompt("Archive reason")

	if err := c.store.ArchivePerson(id, reason); err != nil {
		return fmt.Errorf("archiving person %d: %w", id, err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "person", id, "archive", "Archived: "+reason)
	color.Green("Person %d archived", id)
	return nil
}

func (c *Console) deleteArtifact() error {
	color.Cyan("Delete Artifact (DELETE)")
	id, err := c.promptID("Artifact_ID to delete")
	if err != nil {
		return err
	}

	a, err := c.store.GetArtifact(id)
	if err != nil {
		return fmt.Errorf("artifact %d: %w", id, err)
	}
	fmt.Printf("Deleting: [%d] %s\n", a.ID, a.Name)

	if c.prompt("Confirm delete (type YES)") != "YES" {
		fmt.Println("Deletion aborted.")
		return nil
	}

	if err := c.store.DeleteArtifact(id); err != nil {
		return fmt.Errorf("deleting artifact %d: %w", id, err)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "artifact", id, "delete", "Deleted artifact: "+a.Name)
	color.Green("Artifact %d deleted", id)
	return nil
}

func (c *Console) recomputeDTS() error {
	color.Cyan("Recomputing DTS...")

	report, err := c.engine.Recompute()
	if err != nil {
		return fmt.Errorf("recompute: %w", err)
	}

	for _, rowErr := range report.RowErrors {
		color.Red("row failed: %v", rowErr)
	}

	database.CreateAuditLog(c.store.DB(), c.operatorID(), "dts", 0, "recompute",
		fmt.Sprintf("Recomputed %d events, %d portals, global %d (%s)",
			report.EventsUpdated, report.PortalsUpdated, report.Global.Score, report.Global.Band))
	color.Green("DTS recomputed: %d events, %d portals updated. Global: %d (%s)",
		report.EventsUpdated, report.PortalsUpdated, report.Global.Score, report.Global.Band)
	return nil
}
