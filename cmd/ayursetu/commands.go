package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/jrsteele09/ayursetu-client/consultations"
	"github.com/jrsteele09/ayursetu-client/doctors"
	"github.com/jrsteele09/ayursetu-client/gateway"
	apperrors "github.com/jrsteele09/ayursetu-client/internal/errors"
	"github.com/jrsteele09/ayursetu-client/pharmacy"
	"github.com/jrsteele09/ayursetu-client/sessions"
	"github.com/jrsteele09/ayursetu-client/users"
	"github.com/rs/zerolog/log"
)

var errNotLoggedIn = fmt.Errorf("%w: run the login command first", apperrors.ErrNotAuthenticated)

// errRelogin reports that the backend rejected the session during a command.
var errRelogin = fmt.Errorf("%w: session expired or rejected, please log in again", apperrors.ErrUnauthorized)

// loginRedirect is the session manager's navigator. It records the request
// so the command can finish and the process exits cleanly afterwards.
type loginRedirect struct {
	requested atomic.Bool
}

func (r *loginRedirect) Navigate(path string) {
	log.Debug().Str("path", path).Msg("Login redirect requested")
	r.requested.Store(true)
}

type app struct {
	gw       *gateway.Client
	users    *users.API
	session  *sessions.Manager
	redirect *loginRedirect
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: ayursetu <command> [flags]

commands:
  login          -email -password
  register       -name -email -password [-role -phone -city]
  logout
  whoami
  profile        [-name -phone -city -address]
  doctors        [-specialization -city]
  medicines      [-query]
  consultations  -user-id`)
}

// dispatch runs cmd. A login redirect raised while it ran takes precedence
// over the command's own result.
func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	err := a.runCommand(ctx, cmd, args)
	if a.redirect.requested.Load() {
		return errRelogin
	}
	return err
}

func (a *app) runCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		a.session.Logout()
		fmt.Println("Logged out")
		return nil
	case "whoami":
		return a.whoami()
	case "profile":
		return a.profile(ctx, args)
	case "doctors":
		return a.doctors(ctx, args)
	case "medicines":
		return a.medicines(ctx, args)
	case "consultations":
		return a.consultations(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("login requires -email and -password")
	}

	res := a.session.Login(ctx, *email, *password)
	if !res.Success {
		return errors.New(res.Error)
	}
	user, _ := a.session.User()
	fmt.Printf("Logged in as %s (%s)\n", displayName(user), user.Role)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	reg := users.Registration{}
	fs.StringVar(&reg.Name, "name", "", "full name")
	fs.StringVar(&reg.Email, "email", "", "account email")
	fs.StringVar(&reg.Password, "password", "", "account password")
	role := fs.String("role", string(users.RolePatient), "PATIENT, DOCTOR or ADMIN")
	fs.StringVar(&reg.Phone, "phone", "", "phone number")
	fs.StringVar(&reg.City, "city", "", "city")
	if err := fs.Parse(args); err != nil {
		return err
	}
	reg.Role = users.RoleType(strings.ToUpper(*role))

	res := a.session.Register(ctx, reg)
	if !res.Success {
		return errors.New(res.Error)
	}
	fmt.Println("Registered, you can now log in")
	return nil
}

func (a *app) whoami() error {
	user, ok := a.session.User()
	if !ok {
		return errNotLoggedIn
	}
	fmt.Printf("%s <%s> role=%s expires=%s\n", displayName(user), user.Email, user.Role, user.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func (a *app) profile(ctx context.Context, args []string) error {
	if !a.session.IsAuthenticated() {
		return errNotLoggedIn
	}
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	update := users.ProfileUpdate{}
	fs.StringVar(&update.Name, "name", "", "full name")
	fs.StringVar(&update.Phone, "phone", "", "phone number")
	fs.StringVar(&update.City, "city", "", "city")
	fs.StringVar(&update.Address, "address", "", "street address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res := a.session.UpdateProfile(ctx, update)
	if !res.Success {
		return errors.New(res.Error)
	}
	return printJSON(res.Data)
}

func (a *app) doctors(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("doctors", flag.ContinueOnError)
	specialization := fs.String("specialization", "", "filter by specialization")
	city := fs.String("city", "", "filter by city")
	if err := fs.Parse(args); err != nil {
		return err
	}

	api := doctors.NewAPI(a.gw)
	var list []doctors.Doctor
	var err error
	switch {
	case *specialization != "" && *city != "":
		list, err = api.Search(ctx, *specialization, *city)
	case *specialization != "":
		list, err = api.BySpecialization(ctx, *specialization)
	case *city != "":
		list, err = api.ByCity(ctx, *city)
	default:
		list, err = api.Available(ctx)
	}
	if err != nil {
		return commandError(err)
	}
	for _, d := range list {
		fmt.Printf("%-6d %-28s %-20s %-14s ₹%.0f\n", d.ID, d.Name, d.Specialization, d.City, d.Fee())
	}
	return nil
}

func (a *app) medicines(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("medicines", flag.ContinueOnError)
	query := fs.String("query", "", "search term")
	if err := fs.Parse(args); err != nil {
		return err
	}

	api := pharmacy.NewAPI(a.gw)
	var list []pharmacy.Medicine
	var err error
	if *query != "" {
		list, err = api.Search(ctx, *query)
	} else {
		list, err = api.Available(ctx)
	}
	if err != nil {
		return commandError(err)
	}
	for _, m := range list {
		stock := "out of stock"
		if m.InStock() {
			stock = "in stock"
		}
		fmt.Printf("%-6d %-30s %-16s %s\n", m.ID, m.Name, m.Category, stock)
	}
	return nil
}

// consultations lists a user's consultations. The token carries only the
// email, so the numeric user id has to be given.
func (a *app) consultations(ctx context.Context, args []string) error {
	if !a.session.IsAuthenticated() {
		return errNotLoggedIn
	}
	fs := flag.NewFlagSet("consultations", flag.ContinueOnError)
	userID := fs.Int64("user-id", 0, "numeric user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID <= 0 {
		return errors.New("consultations requires -user-id")
	}

	list, err := consultations.NewAPI(a.gw).ByUser(ctx, *userID)
	if err != nil {
		return commandError(err)
	}
	for _, c := range list {
		fmt.Printf("%-6d %-20s %-12s %-12s doctor=%d\n", c.ID, c.AppointmentDateTime, c.Type, c.Status, c.DoctorID)
	}
	return nil
}

func commandError(err error) error {
	if msg := gateway.ErrorMessage(err); msg != "" {
		return errors.New(msg)
	}
	return err
}

func displayName(u sessions.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
