package errors

import (
	"net/http"

	"github.com/TimDev9492/chad-website/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches any BaseError carrying the same error code, so copies made by WithDetails still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Registration form errors. Messages are shown to attendees as-is.
var (
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Die Eingaben sind ungültig.", "")

	ErrInvalidFirstName            = NewBaseError(http.StatusBadRequest, "INVALID_FIRST_NAME", "Bitte gib deinen Vornamen an.", "")
	ErrInvalidLastName             = NewBaseError(http.StatusBadRequest, "INVALID_LAST_NAME", "Bitte gib deinen Nachnamen an.", "")
	ErrInvalidEmail                = NewBaseError(http.StatusBadRequest, "INVALID_EMAIL", "Bitte gib eine gültige E-Mail-Adresse an.", "")
	ErrInvalidPassword             = NewBaseError(http.StatusBadRequest, "INVALID_PASSWORD", "Bitte gib ein Passwort an.", "")
	ErrInvalidPhoneNumber          = NewBaseError(http.StatusBadRequest, "INVALID_PHONE_NUMBER", "Bitte gib eine gültige Telefonnummer im internationalen Format an (z.B. +491701234567).", "")
	ErrInvalidDateOfBirth          = NewBaseError(http.StatusBadRequest, "INVALID_DATE_OF_BIRTH", "Bitte gib ein gültiges Geburtsdatum an.", "")
	ErrInvalidGender               = NewBaseError(http.StatusBadRequest, "INVALID_GENDER", "Bitte wähle ein Geschlecht aus.", "")
	ErrInvalidWard                 = NewBaseError(http.StatusBadRequest, "INVALID_WARD", "Bitte wähle eine gültige Gemeinde aus.", "")
	ErrInvalidAddress              = NewBaseError(http.StatusBadRequest, "INVALID_ADDRESS", "Bitte gib eine vollständige und gültige Adresse an.", "")
	ErrInvalidBreakfastPreferences = NewBaseError(http.StatusBadRequest, "INVALID_BREAKFAST_PREFERENCES", "Die Frühstücksangaben sind ungültig.", "")
	ErrInvalidAccomodation         = NewBaseError(http.StatusBadRequest, "INVALID_ACCOMODATION", "Bitte wähle eine gültige Unterkunft aus.", "")
	ErrInvalidModeOfTransport      = NewBaseError(http.StatusBadRequest, "INVALID_MODE_OF_TRANSPORT", "Bitte wähle ein gültiges Verkehrsmittel aus.", "")
	ErrInvalidBooleanField         = NewBaseError(http.StatusBadRequest, "INVALID_BOOLEAN_FIELD", "Eine Ja/Nein-Angabe ist ungültig.", "")
	ErrInvalidFoodPreferences      = NewBaseError(http.StatusBadRequest, "INVALID_FOOD_PREFERENCES", "Die Ernährungsangaben sind ungültig.", "")
	ErrTempleStaffRequired         = NewBaseError(http.StatusBadRequest, "TEMPLE_STAFF_REQUIRED", "Nur Tempelarbeiter können sich als Tempelarbeiter zur Verfügung stellen.", "")

	ErrAddressSaveFailed         = NewBaseError(http.StatusBadRequest, "ADDRESS_SAVE_FAILED", "Die Adresse konnte nicht gespeichert werden.", "")
	ErrProfileSaveFailed         = NewBaseError(http.StatusBadRequest, "PROFILE_SAVE_FAILED", "Die persönlichen Angaben konnten nicht gespeichert werden.", "")
	ErrFoodPreferencesSaveFailed = NewBaseError(http.StatusBadRequest, "FOOD_PREFERENCES_SAVE_FAILED", "Die Ernährungsangaben konnten nicht gespeichert werden.", "")
)

// Avatar errors.
var (
	ErrUnsupportedMimeType = NewBaseError(http.StatusBadRequest, "UNSUPPORTED_MIME_TYPE", "Dieses Bildformat wird nicht unterstützt.", "")
	ErrInvalidImage        = NewBaseError(http.StatusBadRequest, "INVALID_IMAGE", "Die Datei ist kein gültiges Bild.", "")
	ErrAvatarUpdateFailed  = NewBaseError(http.StatusInternalServerError, "AVATAR_UPDATE_FAILED", "Failed to update profile picture", "")
)

// Authentication and authorization errors.
var (
	ErrUnauthorized       = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", "")
	ErrForbidden          = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Forbidden", "")
	ErrInvalidCredentials = NewBaseError(http.StatusBadRequest, "INVALID_CREDENTIALS", "E-Mail oder Passwort ist falsch.", "")
	ErrSignUpFailed       = NewBaseError(http.StatusBadRequest, "SIGN_UP_FAILED", "Die Registrierung ist fehlgeschlagen.", "")
	ErrAuthCodeMissing    = NewBaseError(http.StatusBadRequest, "AUTH_CODE_MISSING", "Es wurde kein Anmeldecode übergeben.", "")
	ErrAuthServiceFailed  = NewBaseError(http.StatusBadGateway, "AUTH_SERVICE_FAILED", "Der Anmeldedienst ist nicht erreichbar.", "")
	ErrRegistrationClosed = NewBaseError(http.StatusConflict, "REGISTRATION_CLOSED", "Die maximale Teilnehmerzahl ist erreicht.", "")
)

// Webhook errors. Consumed by the database, so messages stay in English.
var (
	ErrInvalidSignature        = NewBaseError(http.StatusUnauthorized, "INVALID_SIGNATURE", "Unauthorized", "")
	ErrInvalidWebhookPayload   = NewBaseError(http.StatusBadRequest, "INVALID_PAYLOAD", "invalid webhook payload", "")
	ErrUnsupportedTable        = NewBaseError(http.StatusBadRequest, "UNSUPPORTED_TABLE", "unsupported table", "")
	ErrUnsupportedEventType    = NewBaseError(http.StatusBadRequest, "UNSUPPORTED_EVENT_TYPE", "unsupported event type", "")
	ErrUnsupportedBucket       = NewBaseError(http.StatusBadRequest, "UNSUPPORTED_BUCKET", "This webhook only operates on the `avatars` bucket", "")
	ErrUnsupportedAuthProvider = NewBaseError(http.StatusBadRequest, "UNSUPPORTED_PROVIDER", "unsupported auth provider", "")
	ErrAvatarListFailed        = NewBaseError(http.StatusInternalServerError, "AVATAR_LIST_FAILED", "Failed to list files in the avatars bucket", "")
	ErrAvatarDeleteFailed      = NewBaseError(http.StatusInternalServerError, "AVATAR_DELETE_FAILED", "Failed to delete old avatar files", "")
	ErrProfileSyncFailed       = NewBaseError(http.StatusInternalServerError, "PROFILE_SYNC_FAILED", "Failed to sync profile from auth provider", "")
	ErrMailSendFailed          = NewBaseError(http.StatusInternalServerError, "MAIL_SEND_FAILED", "Failed to send confirmation email", "")
)

// Payment, workshop, song and export errors.
var (
	ErrPaymentReferenceMissing = NewBaseError(http.StatusBadRequest, "PAYMENT_REFERENCE_MISSING", "Es wurde keine Zahlungsreferenz angegeben.", "")
	ErrPaymentNotFound         = NewBaseError(http.StatusNotFound, "PAYMENT_NOT_FOUND", "Zu dieser Zahlungsreferenz wurde keine Anmeldung gefunden.", "")
	ErrPaymentUpdateFailed     = NewBaseError(http.StatusInternalServerError, "PAYMENT_UPDATE_FAILED", "Error updating payment status", "")
	ErrPaymentStateConflict    = NewBaseError(http.StatusConflict, "PAYMENT_STATE_CONFLICT", "Der Zahlungsstatus kann nicht mehr geändert werden.", "")
	ErrInvalidPaymentStatus    = NewBaseError(http.StatusBadRequest, "INVALID_PAYMENT_STATUS", "invalid payment status filter", "")
	ErrProfileIncomplete       = NewBaseError(http.StatusForbidden, "PROFILE_INCOMPLETE", "Bitte vervollständige zuerst deine Angaben.", "")

	ErrInvalidWorkshopID = NewBaseError(http.StatusBadRequest, "INVALID_WORKSHOP_ID", "Invalid workshop ID", "")
	ErrWorkshopNotFound  = NewBaseError(http.StatusNotFound, "WORKSHOP_NOT_FOUND", "Workshop not found", "")

	ErrInvalidSongID        = NewBaseError(http.StatusBadRequest, "INVALID_SONG_ID", "Ungültige Song-ID.", "")
	ErrSongNotFound         = NewBaseError(http.StatusNotFound, "SONG_NOT_FOUND", "Der Songvorschlag wurde nicht gefunden.", "")
	ErrSongAlreadySuggested = NewBaseError(http.StatusConflict, "SONG_ALREADY_SUGGESTED", "Dieser Song wurde bereits vorgeschlagen.", "")
	ErrSongAlreadyLiked     = NewBaseError(http.StatusConflict, "SONG_ALREADY_LIKED", "Du hast diesen Song bereits geliked.", "")
	ErrSearchQueryMissing   = NewBaseError(http.StatusBadRequest, "SEARCH_QUERY_MISSING", "Query parameter 'q' is required", "")
	ErrMusicSearchFailed    = NewBaseError(http.StatusInternalServerError, "MUSIC_SEARCH_FAILED", "Failed to search tracks", "")

	ErrExportFailed = NewBaseError(http.StatusInternalServerError, "EXPORT_FAILED", "Failed to create excel spreadsheet!", "")
)

// General errors.
var (
	ErrTransactionFailed = NewBaseError(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed", "")
	ErrInternalError     = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", "")
	ErrNotFound          = NewBaseError(http.StatusNotFound, "NOT_FOUND", "Resource not found", "")
	ErrConflict          = NewBaseError(http.StatusConflict, "CONFLICT", "Resource conflict", "")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Unwrap exposes the driver error for errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
