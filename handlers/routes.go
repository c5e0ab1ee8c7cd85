package handlers

import "net/http"

// Register mounts every authenticated data route. The caller wraps the
// mux with the token and user-sync middleware.
func (h *DataHandler) Register(mux *http.ServeMux) {
	// Plan lifecycle
	mux.HandleFunc("GET /api/plans", h.ListPlans)
	mux.HandleFunc("POST /api/plans", h.CreatePlan)
	mux.HandleFunc("POST /api/plans/import", h.ImportPlan)
	mux.HandleFunc("GET /api/plans/{plan}", h.GetPlan)
	mux.HandleFunc("PATCH /api/plans/{plan}", h.UpdatePlan)
	mux.HandleFunc("DELETE /api/plans/{plan}", h.DeletePlan)
	mux.HandleFunc("PUT /api/plans/{plan}/topic-weight", h.SetTopicWeight)

	// Study records
	mux.HandleFunc("GET /api/plans/{plan}/records", h.GetStudyRecords)
	mux.HandleFunc("PUT /api/plans/{plan}/records", h.SaveStudyRecord)
	mux.HandleFunc("DELETE /api/plans/{plan}/records/{recordID}", h.DeleteStudyRecord)
	mux.HandleFunc("POST /api/plans/{plan}/records/migrate", h.MigrateRecordIDs)

	// Review records
	mux.HandleFunc("GET /api/plans/{plan}/reviews", h.GetReviewRecords)
	mux.HandleFunc("PUT /api/plans/{plan}/reviews", h.SaveReviewRecord)
	mux.HandleFunc("DELETE /api/plans/{plan}/reviews/{recordID}", h.DeleteReviewRecord)

	// Simulado records
	mux.HandleFunc("GET /api/plans/{plan}/simulados", h.GetSimuladoRecords)
	mux.HandleFunc("PUT /api/plans/{plan}/simulados", h.SaveSimuladoRecord)
	mux.HandleFunc("DELETE /api/plans/{plan}/simulados/{recordID}", h.DeleteSimuladoRecord)

	// Study cycle
	mux.HandleFunc("GET /api/plans/{plan}/cycle", h.GetStudyCycle)
	mux.HandleFunc("PUT /api/plans/{plan}/cycle", h.SaveStudyCycle)
	mux.HandleFunc("DELETE /api/plans/{plan}/cycle", h.DeleteStudyCycle)

	// Backup / restore
	mux.HandleFunc("GET /api/backup", h.ExportBackup)
	mux.HandleFunc("POST /api/backup/restore", h.RestoreBackup)
	mux.HandleFunc("DELETE /api/data", h.ClearAllData)

	// Icons and session
	mux.HandleFunc("POST /api/icons", h.UploadIcon)
	mux.HandleFunc("GET /api/auth/me", Me)
}
