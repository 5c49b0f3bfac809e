package cli

const (
	msgFailedToCreateUser   = "Failed to create user."
	msgUsernameTaken        = "Username taken, try again!"
	msgCreatedUser          = "Created user %s"
	msgUserAlreadyLoggedIn  = "User already logged in."
	msgLoginFailed          = "Login failed."
	msgLoggedInAs           = "Logged in as: %s"
	msgTooManyLoginAttempts = "Too many login attempts, wait a minute and try again."
	msgPleaseLoginFirst     = "Please login first!"
	msgPleaseLoginPatient   = "Please login as a patient!"
	msgPleaseLoginCaregiver = "Please login as a caregiver first!"
	msgPleaseTryAgain       = "Please try again!"
	msgInvalidDate          = "Please enter a valid date!"
	msgNoCaregiver          = "No Caregiver is available!"
	msgNotEnoughDoses       = "Not enough available doses!"
	msgAppointment          = "Appointment ID: %d, Caregiver username: %s"
	msgAvailabilityUploaded = "Availability uploaded!"
	msgUploadFailed         = "Error occurred when uploading availability"
	msgDosesUpdated         = "Doses updated!"
	msgAddDosesFailed       = "Error occurred when adding doses"
	msgAvailableCaregiver   = "Available caregiver: %s"
	msgVaccineDoses         = "Vaccine: %s, Available Doses: %d"
	msgCancelNotSupported   = "Cancelling appointments is not supported."
	msgLogoutNotLoggedIn    = "Please login first."
	msgLoggedOut            = "Successfully logged out!"
	msgBye                  = "Bye!"
	msgInvalidOperation     = "Invalid operation name!"
)

var msgWeakPassword = []string{
	"Password is not strong, try again!",
	"It should include:",
	"•At least 8 characters",
	"•A mixture of both uppercase and lowercase letters",
	"•A mixture of letters and numbers",
	"•Inclusion of at least one special character, from “!”, “@”, “#”, “?”",
}

var helpLines = []string{
	"*** Please enter one of the following commands ***",
	"> create_patient <username> <password>",
	"> create_caregiver <username> <password>",
	"> login_patient <username> <password>",
	"> login_caregiver <username> <password>",
	"> search_caregiver_schedule <date>",
	"> reserve <date> <vaccine>",
	"> upload_availability <date>",
	"> cancel <appointment_id>",
	"> add_doses <vaccine> <number>",
	"> show_appointments",
	"> logout",
	"> quit",
}
