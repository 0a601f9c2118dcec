package backup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/onsi/gomega"
	"github.com/torisaki/mtg/internal/core"
)

func TestExportEnvelope(t *testing.T) {
	g := gomega.NewWithT(t)

	now := time.Date(2025, 8, 31, 15, 4, 5, 0, time.UTC)
	meetings := []core.Meeting{
		{
			ID:               1,
			Name:             "Taro",
			Status:           core.StatusPending,
			PreferredOptions: []core.PreferredOption{{Date: "2025-09-01", TimeSlot: "morning"}},
		},
	}

	data, err := Export(meetings, now)
	g.Expect(err).ToNot(gomega.HaveOccurred())

	var env Envelope
	g.Expect(json.Unmarshal(data, &env)).To(gomega.Succeed())
	g.Expect(env.Version).To(gomega.Equal("1.0"))
	g.Expect(env.ExportDate).To(gomega.Equal("2025-08-31T15:04:05Z"))
	g.Expect(env.Meetings).To(gomega.HaveLen(1))
	g.Expect(env.Meetings[0].Name).To(gomega.Equal("Taro"))

	// wire field names are part of the interchange contract
	g.Expect(string(data)).To(gomega.ContainSubstring(`"preferredOptions"`))
	g.Expect(string(data)).To(gomega.ContainSubstring(`"timeSlot"`))
	g.Expect(string(data)).To(gomega.ContainSubstring(`"confirmedDate"`))
}

func TestFilename(t *testing.T) {
	g := gomega.NewWithT(t)

	now := time.Date(2025, 8, 31, 23, 0, 0, 0, time.UTC)
	g.Expect(Filename(now)).To(gomega.Equal("meeting-data-backup-2025-08-31.json"))
}

func TestImportFiltersMalformedRecords(t *testing.T) {
	g := gomega.NewWithT(t)

	data := []byte(`{
		"exportDate": "2025-08-31T15:04:05Z",
		"version": "1.0",
		"meetings": [
			{"id": 1, "name": "Taro", "preferredOptions": [{"date": "2025-09-01", "timeSlot": "morning"}], "status": "pending"},
			{"id": "bad", "name": "string id", "preferredOptions": []},
			{"id": 2, "name": 42, "preferredOptions": []},
			{"id": 3, "name": "no options"},
			"not even an object",
			{"id": 4, "name": "Hanako", "preferredOptions": [], "status": "confirmed", "confirmedDate": "2025-09-02"}
		]
	}`)

	meetings, err := Import(data)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(meetings).To(gomega.HaveLen(2))
	g.Expect(meetings[0].ID).To(gomega.Equal(1))
	g.Expect(meetings[0].PreferredOptions[0].TimeSlot).To(gomega.Equal("morning"))
	g.Expect(meetings[1].ID).To(gomega.Equal(4))
	g.Expect(meetings[1].ConfirmedDate).To(gomega.Equal("2025-09-02"))
}

func TestImportRejectsInvalidDocuments(t *testing.T) {
	g := gomega.NewWithT(t)

	_, err := Import([]byte("not json"))
	g.Expect(err).To(gomega.HaveOccurred())

	_, err = Import([]byte(`{"version": "1.0"}`))
	g.Expect(err).To(gomega.HaveOccurred())

	// an empty meetings array is a valid, empty backup
	meetings, err := Import([]byte(`{"meetings": []}`))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(meetings).To(gomega.BeEmpty())
}
