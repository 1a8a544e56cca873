package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"missions/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetMissionQueryHandler retrieves one mission order from the database.
//
// Example:
//
//	handler := NewGetMissionQueryHandler(db)
//	query, _ := NewGetMissionQuery(missionID)
//
//	missionDetail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get mission: %v", err)
//	    return err
//	}
type GetMissionQueryHandler struct {
	db *gorm.DB
}

// NewGetMissionQueryHandler creates a handler for single-mission queries.
// Requires a GORM database connection for query execution.
func NewGetMissionQueryHandler(db *gorm.DB) GetMissionQueryHandler {
	return GetMissionQueryHandler{db: db}
}

// Handle executes the query to retrieve a mission by ID.
// Returns an ObjectNotFoundError if the mission does not exist.
func (h GetMissionQueryHandler) Handle(
	ctx context.Context,
	query GetMissionQuery,
) (GetMissionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMissionQueryResponse{}, err
	}

	var (
		missionResp    GetMissionQueryResponse
		feesRaw        []byte
		reportedIssues pq.StringArray
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			mission_type,
			status,
			version,
			crew_name,
			crew_position,
			crew_type,
			aircraft_registration,
			aircraft_type,
			contract_start,
			contract_end,
			salary_amount,
			salary_mode,
			salary_currency,
			per_diem_amount,
			per_diem_enabled,
			contract_zero_hour,
			has_contract,
			actual_end_date,
			was_extended,
			extension_reason,
			rejection_reason,
			created_at,
			approved_at,
			validated_at,
			has_email_data,
			email_recipient,
			email_subject,
			email_body,
			email_fees,
			has_validation,
			validation_comments,
			bank_details_confirmed,
			reported_issues,
			payment_issue,
			validation_recorded_at,
			has_date_modification,
			date_mod_orig_start,
			date_mod_orig_end,
			date_mod_req_start,
			date_mod_req_end,
			date_mod_reason,
			date_mod_status,
			date_mod_requested_at,
			date_mod_resolved_at
		FROM missions
		WHERE id = ?
	`, query.MissionID().String()).Row()

	err := row.Scan(
		&missionResp.MissionType,
		&missionResp.Status,
		&missionResp.Version,
		&missionResp.CrewName,
		&missionResp.CrewPosition,
		&missionResp.CrewType,
		&missionResp.AircraftRegistration,
		&missionResp.AircraftType,
		&missionResp.ContractStart,
		&missionResp.ContractEnd,
		&missionResp.SalaryAmount,
		&missionResp.SalaryMode,
		&missionResp.SalaryCurrency,
		&missionResp.PerDiemAmount,
		&missionResp.PerDiemEnabled,
		&missionResp.ZeroHour,
		&missionResp.HasContract,
		&missionResp.ActualEndDate,
		&missionResp.WasExtended,
		&missionResp.ExtensionReason,
		&missionResp.RejectionReason,
		&missionResp.CreatedAt,
		&missionResp.ApprovedAt,
		&missionResp.ValidatedAt,
		&missionResp.HasEmailData,
		&missionResp.EmailRecipient,
		&missionResp.EmailSubject,
		&missionResp.EmailBody,
		&feesRaw,
		&missionResp.HasValidation,
		&missionResp.ValidationComments,
		&missionResp.BankDetailsConfirmed,
		&reportedIssues,
		&missionResp.PaymentIssue,
		&missionResp.ValidationRecordedAt,
		&missionResp.HasDateModification,
		&missionResp.DateModOriginalStart,
		&missionResp.DateModOriginalEnd,
		&missionResp.DateModRequestedStart,
		&missionResp.DateModRequestedEnd,
		&missionResp.DateModReason,
		&missionResp.DateModStatus,
		&missionResp.DateModRequestedAt,
		&missionResp.DateModResolvedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetMissionQueryResponse{}, errs.NewObjectNotFoundError("missionID", query.MissionID())
	}
	if err != nil {
		return GetMissionQueryResponse{}, err
	}

	if len(feesRaw) > 0 {
		var fees MissionFees
		if err = json.Unmarshal(feesRaw, &fees); err != nil {
			return GetMissionQueryResponse{}, err
		}
		missionResp.EmailFees = &fees
	}
	missionResp.ReportedIssues = reportedIssues
	missionResp.ID = query.MissionID()

	return missionResp, nil
}
