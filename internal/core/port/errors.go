package port

import "errors"

var (
	// ErrCampaignNotFound is returned when a referenced campaign does not exist.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrUserNotFound is returned when a wallet or user id resolves to nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrWalletUnknown is returned when an acting wallet has never connected.
	ErrWalletUnknown = errors.New("user not found, please connect your wallet first")
	// ErrNotCreator is returned when a mutation is attempted by a wallet that
	// does not own the campaign.
	ErrNotCreator = errors.New("only the campaign creator can update this campaign")
	// ErrDuplicateSubmission is returned when the same user submits the same
	// video to the same campaign twice.
	ErrDuplicateSubmission = errors.New("this video has already been submitted to this campaign")
	// ErrUpstream is returned when an external collaborator (view-count
	// lookup, content validation) fails.
	ErrUpstream = errors.New("upstream service failed")
)

// ValidationError reports malformed, missing or out-of-range input. The
// string is safe to return to the caller verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ErrCampaignNotActive rejects submissions against campaigns that are not
// accepting content.
const ErrCampaignNotActive = ValidationError("campaign is not active")

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
