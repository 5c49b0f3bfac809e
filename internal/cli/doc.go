// Package cli provides the interactive vaccine scheduler command line.
//
// It wires configuration, storage (PostgreSQL or in-memory), the account,
// schedule and reservation services, and a line-oriented REPL. One App owns
// one Session; the logged-in account lives there and nowhere else.
//
// Commands:
//   - create_patient / create_caregiver <username> [password]
//   - login_patient / login_caregiver <username> [password]
//   - search_caregiver_schedule <date>
//   - reserve <date> <vaccine>          (patients)
//   - upload_availability <date>        (caregivers)
//   - add_doses <vaccine> <number>      (caregivers)
//   - show_appointments
//   - cancel <appointment_id>
//   - logout, help, quit
//
// When the password argument is omitted it is read from the terminal
// without echo.
package cli
