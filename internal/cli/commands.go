package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) CreatePatient(ctx context.Context, tokens []string) error {
	return a.createAccount(ctx, models.RolePatient, tokens)
}

func (a *App) CreateCaregiver(ctx context.Context, tokens []string) error {
	return a.createAccount(ctx, models.RoleCaregiver, tokens)
}

// passwordArg returns tokens[2] or, when the line has only a username,
// prompts for the password. A terminal is read without echo; other input
// supplies the password as its next line.
func (a *App) passwordArg(tokens []string) ([]byte, error) {
	if len(tokens) == 3 {
		return []byte(tokens[2]), nil
	}

	f, isFile := a.in.(*os.File)
	if a.lines == nil || isFile && isTerminal(int(f.Fd())) {
		return getPassword()
	}

	printFn("Enter password: ")
	if !a.lines.Scan() {
		if err := a.lines.Err(); err != nil {
			return nil, err
		}
		return nil, io.ErrUnexpectedEOF
	}
	return []byte(strings.TrimSpace(a.lines.Text())), nil
}

func (a *App) createAccount(ctx context.Context, role models.Role, tokens []string) error {
	if len(tokens) != 2 && len(tokens) != 3 {
		printlnFn(msgFailedToCreateUser)
		return common.ErrBadRequest
	}
	username := tokens[1]

	password, err := a.passwordArg(tokens)
	if err != nil {
		a.logger.Error(ctx, "reading password failed", "error", err)
		printlnFn(msgFailedToCreateUser)
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Register(ctx, role, username, password); err != nil {
		switch {
		case errors.Is(err, common.ErrUsernameTaken):
			printlnFn(msgUsernameTaken)
		case errors.Is(err, common.ErrWeakPassword):
			for _, l := range msgWeakPassword {
				printlnFn(l)
			}
		default:
			a.logger.Error(ctx, "creating account failed", "role", role.String(), "username", username, "error", err)
			printlnFn(msgFailedToCreateUser)
		}
		return err
	}

	printlnFn(fmt.Sprintf(msgCreatedUser, username))
	return nil
}

func (a *App) LoginPatient(ctx context.Context, tokens []string) error {
	return a.login(ctx, models.RolePatient, tokens)
}

func (a *App) LoginCaregiver(ctx context.Context, tokens []string) error {
	return a.login(ctx, models.RoleCaregiver, tokens)
}

func (a *App) login(ctx context.Context, role models.Role, tokens []string) error {
	if a.session.LoggedIn() {
		printlnFn(msgUserAlreadyLoggedIn)
		return nil
	}
	if len(tokens) != 2 && len(tokens) != 3 {
		printlnFn(msgLoginFailed)
		return common.ErrBadRequest
	}
	if !a.session.AllowLogin() {
		a.logger.Warn(ctx, "login throttled", "role", role.String(), "username", tokens[1])
		printlnFn(msgTooManyLoginAttempts)
		return common.ErrorUnauthorized
	}
	username := tokens[1]

	password, err := a.passwordArg(tokens)
	if err != nil {
		a.logger.Error(ctx, "reading password failed", "error", err)
		printlnFn(msgLoginFailed)
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Login(ctx, role, username, password); err != nil {
		printlnFn(msgLoginFailed)
		return err
	}

	a.session.LogIn(role, username)
	printlnFn(fmt.Sprintf(msgLoggedInAs, username))
	return nil
}

func (a *App) SearchCaregiverSchedule(ctx context.Context, tokens []string) error {
	if !a.session.LoggedIn() {
		printlnFn(msgPleaseLoginFirst)
		return errNotLoggedIn
	}
	if len(tokens) != 2 {
		printlnFn(msgPleaseTryAgain)
		return common.ErrBadRequest
	}

	sched, err := a.schedule.SearchSchedule(ctx, tokens[1])
	if err != nil {
		if errors.Is(err, common.ErrInvalidDate) {
			printlnFn(msgInvalidDate)
		} else {
			a.logger.Error(ctx, "schedule search failed", "error", err)
			printlnFn(msgPleaseTryAgain)
		}
		return err
	}

	for _, c := range sched.Caregivers {
		printlnFn(fmt.Sprintf(msgAvailableCaregiver, c))
	}
	for _, v := range sched.Vaccines {
		printlnFn(fmt.Sprintf(msgVaccineDoses, v.Name, v.Doses))
	}
	return nil
}

func (a *App) Reserve(ctx context.Context, tokens []string) error {
	if !a.session.Is(models.RolePatient) {
		if a.session.LoggedIn() {
			printlnFn(msgPleaseLoginPatient)
		} else {
			printlnFn(msgPleaseLoginFirst)
		}
		return errNotLoggedIn
	}
	if len(tokens) != 3 {
		printlnFn(msgPleaseTryAgain)
		return common.ErrBadRequest
	}

	res, err := a.reservations.Reserve(ctx, tokens[1], tokens[2], a.session.Username)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidDate):
			printlnFn(msgInvalidDate)
		case errors.Is(err, common.ErrNoCaregiverAvailable):
			printlnFn(msgNoCaregiver)
		case errors.Is(err, common.ErrInsufficientDoses):
			printlnFn(msgNotEnoughDoses)
		default:
			printlnFn(msgPleaseTryAgain)
		}
		return err
	}

	printlnFn(fmt.Sprintf(msgAppointment, res.Appointment.ID, res.Appointment.Caregiver))
	for _, appt := range res.Listing {
		printlnFn(fmt.Sprintf("%d %s", appt.ID, appt.Caregiver))
	}
	return nil
}

func (a *App) UploadAvailability(ctx context.Context, tokens []string) error {
	if !a.session.Is(models.RoleCaregiver) {
		printlnFn(msgPleaseLoginCaregiver)
		return errNotLoggedIn
	}
	if len(tokens) != 2 {
		printlnFn(msgPleaseTryAgain)
		return common.ErrBadRequest
	}

	if err := a.schedule.UploadAvailability(ctx, a.session.Username, tokens[1]); err != nil {
		if errors.Is(err, common.ErrInvalidDate) {
			printlnFn(msgInvalidDate)
		} else {
			a.logger.Error(ctx, "uploading availability failed", "error", err)
			printlnFn(msgUploadFailed)
		}
		return err
	}

	printlnFn(msgAvailabilityUploaded)
	return nil
}

func (a *App) Cancel(_ context.Context, _ []string) error {
	printlnFn(msgCancelNotSupported)
	return nil
}

func (a *App) AddDoses(ctx context.Context, tokens []string) error {
	if !a.session.Is(models.RoleCaregiver) {
		printlnFn(msgPleaseLoginCaregiver)
		return errNotLoggedIn
	}
	if len(tokens) != 3 {
		printlnFn(msgPleaseTryAgain)
		return common.ErrBadRequest
	}

	count, err := strconv.Atoi(tokens[2])
	if err != nil {
		printlnFn(msgPleaseTryAgain)
		return common.ErrInvalidDoseCount
	}

	if _, err := a.schedule.AddDoses(ctx, tokens[1], count); err != nil {
		if errors.Is(err, common.ErrBadRequest) {
			printlnFn(msgPleaseTryAgain)
		} else {
			a.logger.Error(ctx, "adding doses failed", "vaccine", tokens[1], "error", err)
			printlnFn(msgAddDosesFailed)
		}
		return err
	}

	printlnFn(msgDosesUpdated)
	return nil
}

func (a *App) ShowAppointments(ctx context.Context, tokens []string) error {
	if !a.session.LoggedIn() {
		printlnFn(msgPleaseLoginFirst)
		return errNotLoggedIn
	}
	if len(tokens) != 1 {
		printlnFn(msgPleaseTryAgain)
		return common.ErrBadRequest
	}

	list, err := a.schedule.Appointments(ctx, a.session.Role, a.session.Username)
	if err != nil {
		a.logger.Error(ctx, "listing appointments failed", "error", err)
		printlnFn(msgPleaseTryAgain)
		return err
	}

	for _, appt := range list {
		other := appt.Caregiver
		if a.session.Is(models.RoleCaregiver) {
			other = appt.Patient
		}
		printlnFn(fmt.Sprintf("%d %s %s %s", appt.ID, appt.Vaccine, models.FormatDate(appt.Date), other))
	}
	return nil
}

func (a *App) Logout(ctx context.Context, tokens []string) error {
	if !a.session.LoggedIn() {
		printlnFn(msgLogoutNotLoggedIn)
		return errNotLoggedIn
	}
	if len(tokens) != 1 {
		printlnFn(msgPleaseTryAgain)
		return common.ErrBadRequest
	}

	a.logger.Info(ctx, "logged out", "role", a.session.Role.String(), "username", a.session.Username)
	a.session.LogOut()
	printlnFn(msgLoggedOut)
	return nil
}
