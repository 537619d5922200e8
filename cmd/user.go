package cmd

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/thinkwise-edu/thinkwise/internal/auth"
	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/store"
	"github.com/thinkwise-edu/thinkwise/internal/ui/theme"
)

var validate = validator.New()

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts and mint bearer tokens",
}

type newUser struct {
	Email        string `validate:"required,email"`
	Name         string `validate:"max=100"`
	Role         string `validate:"oneof=STUDENT TEACHER ADMIN"`
	Subscription string `validate:"oneof=FREE PREMIUM"`
	Grade        int    `validate:"min=0,max=6"`
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		var in newUser
		in.Email, _ = cmd.Flags().GetString("email")
		in.Name, _ = cmd.Flags().GetString("name")
		in.Role, _ = cmd.Flags().GetString("role")
		in.Subscription, _ = cmd.Flags().GetString("subscription")
		in.Grade, _ = cmd.Flags().GetInt("grade")
		in.Role = strings.ToUpper(in.Role)
		in.Subscription = strings.ToUpper(in.Subscription)
		if err := validate.Struct(in); err != nil {
			return fmt.Errorf("invalid user: %w", err)
		}

		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		u := &exercise.User{
			Email:        in.Email,
			Name:         in.Name,
			Role:         exercise.Role(in.Role),
			Subscription: exercise.Subscription(in.Subscription),
		}
		if in.Grade > 0 {
			u.Grade = &in.Grade
		}
		created, err := a.store.Users().Create(cmd.Context(), u)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s %s (%s, %s)\n", theme.OK.Render("created"), created.ID, created.Email, created.Role, created.Subscription)
		return nil
	},
}

var userRoleCmd = &cobra.Command{
	Use:   "role <email> <role>",
	Short: "Change a user's role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := exercise.ParseRole(strings.ToUpper(args[1]))
		if err != nil {
			return err
		}

		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := a.store.Users().GetByEmail(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		u, err = a.store.Users().SetRole(cmd.Context(), u.ID, role)
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", u.Email, theme.Title.Render(string(u.Role)))
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		search, _ := cmd.Flags().GetString("search")
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		users, total, err := a.store.Users().List(cmd.Context(), store.UserFilter{
			Role:   exercise.Role(strings.ToUpper(role)),
			Search: search,
			Limit:  limit,
		})
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}

		fmt.Println(theme.Row(
			theme.Cell(theme.Header, "Email", 30),
			theme.Cell(theme.Header, "Name", 16),
			theme.Cell(theme.Header, "Role", 7),
			theme.Cell(theme.Header, "Plan", 7),
			theme.Cell(theme.Header, "Gr", 2),
			theme.Cell(theme.Header, "Created", 10),
		))
		fmt.Println(theme.Rule(82))
		for _, u := range users {
			grade := "-"
			if u.Grade != nil {
				grade = fmt.Sprint(*u.Grade)
			}
			fmt.Println(theme.Row(
				theme.Cell(theme.Plain, u.Email, 30),
				theme.Cell(theme.Plain, u.Name, 16),
				theme.Cell(theme.Title, string(u.Role), 7),
				theme.Cell(theme.Plain, string(u.Subscription), 7),
				theme.Cell(theme.Plain, grade, 2),
				theme.Cell(theme.Dim, u.CreatedAt.Local().Format("2006-01-02"), 10),
			))
		}
		if total > len(users) {
			fmt.Println(theme.Dim.Render(fmt.Sprintf("showing %d of %d", len(users), total)))
		}
		return nil
	},
}

var userTokenCmd = &cobra.Command{
	Use:   "token <email>",
	Short: "Print a bearer token for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		issuer, err := auth.NewIssuer(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
		if err != nil {
			return fmt.Errorf("auth: %w (set JWT_SECRET)", err)
		}
		u, err := a.store.Users().GetByEmail(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		token, err := issuer.Issue(u)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	f := userAddCmd.Flags()
	f.String("email", "", "Email address (required)")
	f.String("name", "", "Display name")
	f.String("role", string(exercise.RoleStudent), "STUDENT, TEACHER or ADMIN")
	f.String("subscription", string(exercise.SubscriptionFree), "FREE or PREMIUM")
	f.Int("grade", 0, "School grade 1-6 (0 for none)")
	userAddCmd.MarkFlagRequired("email")

	userListCmd.Flags().String("role", "", "Filter by role")
	userListCmd.Flags().String("search", "", "Substring of email or name")
	userListCmd.Flags().IntP("limit", "n", 50, "Maximum number of users to show")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userRoleCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userTokenCmd)
}
