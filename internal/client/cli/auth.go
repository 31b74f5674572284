package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/apperr"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/cooldown"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/form"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/notify"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/filex"
)

// getSimpleText, getPassword and describeFile are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	describeFile  = filex.Describe
)

// ErrFormBusy is returned when a form is submitted again while the previous
// submission is still in flight.
var ErrFormBusy = errors.New("form submission in progress")

// submit runs fn with g held and reports failures through the notifier.
func (a *App) submit(g *form.Guard, fn func() error) error {
	if !g.TryAcquire() {
		a.notifier.Notify(notify.LevelError, "Please wait", "A submission is already in progress.")
		return ErrFormBusy
	}
	defer g.Release()

	if err := fn(); err != nil {
		a.showError(err)
		return err
	}
	return nil
}

func (a *App) showError(err error) {
	var ce *apperr.Error
	if errors.As(err, &ce) {
		a.notifier.Notify(notify.LevelError, "Error", ce.Message)
		return
	}
	a.notifier.Notify(notify.LevelError, "Error", err.Error())
}

// Login prompts for credentials and signs in. On success the session is
// kept for the prompt status and later commands.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email Address", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	return a.submit(&a.loginForm, func() error {
		sess, err := a.auth.Login(ctx, models.Credentials{Email: email, Password: password})
		if err != nil {
			return err
		}
		a.setSession(sess)
		return nil
	})
}

// Register collects the create-account form. An empty clearance path means
// no document is attached.
func (a *App) Register(ctx context.Context) error {
	var p models.RegistrationPayload
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Full Name", &p.Name},
		{"Birthdate (YYYY-MM-DD)", &p.Birthdate},
		{"Address", &p.Address},
		{"Email Address", &p.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	var err error
	if p.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	if p.ConfirmPassword, err = getPassword(a.reader, "Confirm Password", a.out); err != nil {
		return err
	}

	path, err := getSimpleText(a.reader, "Barangay Clearance file (PDF or image, empty to skip)", a.out)
	if err != nil {
		return err
	}

	return a.submit(&a.registerForm, func() error {
		if path != "" {
			info, err := describeFile(path)
			if err != nil {
				return apperr.NewValidation("clearance", fmt.Sprintf("Cannot read %s", path))
			}
			p.Clearance = &models.Clearance{Name: info.Name, Size: info.Size, MimeType: info.MimeType, URI: info.Path}
		}

		user, err := a.auth.Register(ctx, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Account created for %s. Sign in with 'login'.\n", user.Email)
		return nil
	})
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email Address", a.out)
	if err != nil {
		return err
	}

	return a.submit(&a.forgotForm, func() error {
		if err := a.auth.ForgotPassword(ctx, email); err != nil {
			return err
		}
		a.printResendIn()
		return nil
	})
}

func (a *App) ResendPasswordReset(ctx context.Context) error {
	return a.submit(&a.forgotForm, func() error {
		err := a.auth.ResendPasswordReset(ctx)
		if err != nil && !apperr.IsCategory(err, apperr.CategoryRateLimited) {
			return err
		}
		a.printResendIn()
		return err
	})
}

func (a *App) printResendIn() {
	if left := a.auth.ResendCooldown(); left > 0 {
		fmt.Fprintf(a.out, "Resend in %s\n", cooldown.FormatDuration(left))
	}
}

func (a *App) VerifyOTP(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Verification code", a.out)
	if err != nil {
		return err
	}
	return a.submit(&a.otpForm, func() error {
		return a.auth.VerifyOTP(ctx, code)
	})
}

func (a *App) ResendOTP(ctx context.Context) error {
	return a.submit(&a.otpForm, func() error {
		return a.auth.ResendOTP(ctx)
	})
}

func (a *App) WhoAmI(context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	u := a.currentUser()
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	if u.Address != "" {
		fmt.Fprintf(a.out, "Address: %s\n", u.Address)
	}
	if u.Birthdate != "" {
		fmt.Fprintf(a.out, "Birthdate: %s\n", u.Birthdate)
	}
	if u.Phone != "" {
		fmt.Fprintf(a.out, "Phone: %s\n", u.Phone)
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		a.showError(err)
		return err
	}
	a.setSession(nil)
	return nil
}
