package routers

import (
	"patientdesk-service/internal/app/delivery/http/middlewares"
	"patientdesk-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Get("/", patientController.ListPatients)
	router.Get("/search", patientController.SearchPatients)
	router.Get("/{patient_id}", patientController.FindPatientByID)

	router.With(middlewares.MutationQuota).Post("/", patientController.CreatePatient)
	router.With(middlewares.MutationQuota).Patch("/{patient_id}", patientController.UpdatePatient)
	router.With(middlewares.MutationQuota).Delete("/{patient_id}", patientController.DeletePatient)
}
