package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Register(context.Context) error            { return f.record("register") }
func (f *fakeExec) ForgotPassword(context.Context) error      { return f.record("forgot") }
func (f *fakeExec) ResendPasswordReset(context.Context) error { return f.record("resend") }
func (f *fakeExec) VerifyOTP(context.Context) error           { return f.record("verify") }
func (f *fakeExec) ResendOTP(context.Context) error           { return f.record("resendotp") }
func (f *fakeExec) Announcements(context.Context) error       { return f.record("announcements") }
func (f *fakeExec) Complaints(context.Context) error          { return f.record("complaints") }
func (f *fakeExec) WhoAmI(context.Context) error              { return f.record("whoami") }
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesEveryCommand(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"register", "forgot", "resend", "verify", "announcements", "a", "login",
		"verify", "resendotp", "complaints", "c", "whoami", "a", "logout", "exit",
		"login",
	}, "\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"register", "forgot", "resend", "verify", "announcements", "announcements", "login",
		"verify", "resendotp", "complaints", "complaints", "whoami", "announcements", "logout",
	}, exec.calls)
}

func helpCommands(help string) []string {
	_, list, _ := strings.Cut(help, ": ")
	return strings.Split(list, ", ")
}

func TestRunREPL_CommandsFollowHelpForSessionState(t *testing.T) {
	lines := capturePrintln(t)

	input := "complaints\nresendotp\nwhoami\nlogout\nlogin\nforgot\nresend\nregister\nlogin\nexit\n"
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"login"}, exec.calls)
	signedIn, signedOut := helpCommands(helpSignedIn), helpCommands(helpSignedOut)
	for _, cmd := range []string{"complaints", "resendotp", "whoami", "logout"} {
		assert.Contains(t, *lines, "Sign in first to use: "+cmd)
		assert.Contains(t, signedIn, cmd)
		assert.NotContains(t, signedOut, cmd)
	}
	for _, cmd := range []string{"forgot", "resend", "register", "login"} {
		assert.Contains(t, *lines, "Sign out first to use: "+cmd)
		assert.Contains(t, signedOut, cmd)
		assert.NotContains(t, signedIn, cmd)
	}
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrintln(t)

	input := "help\nlogin\nhelp\n\nfoobar\nquit\n"
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "(s)" }, bufio.NewReader(strings.NewReader(input)))

	assert.Contains(t, *lines, helpSignedOut)
	assert.Contains(t, *lines, helpSignedIn)
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
	assert.Contains(t, *lines, "brgy (s)> ")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrintln(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("announcements")))

	assert.Equal(t, []string{"announcements"}, exec.calls)
}
