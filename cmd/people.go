package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzeman/facegate/internal/config"
	"github.com/mzeman/facegate/internal/database/postgres"
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "Inspect the registration log",
}

var peopleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered people",
	RunE:  runPeopleList,
}

var peopleCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Show the number of registered people",
	RunE:  runPeopleCount,
}

var peopleLastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the most recent registration",
	RunE:  runPeopleLast,
}

func init() {
	rootCmd.AddCommand(peopleCmd)
	peopleCmd.AddCommand(peopleListCmd)
	peopleCmd.AddCommand(peopleCountCmd)
	peopleCmd.AddCommand(peopleLastCmd)
}

func runPeopleList(cmd *cobra.Command, args []string) error {
	pool, err := connectDatabase(config.Load())
	if err != nil {
		return err
	}
	defer pool.Close()

	people, err := postgres.NewPersonRepository(pool).All(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load registrations: %w", err)
	}

	if len(people) == 0 {
		fmt.Println("No registrations yet")
		return nil
	}

	for i, person := range people {
		fmt.Printf("%4d. %s  %s  (%s)\n",
			i+1, person.RegisteredAt.Format("2006-01-02 15:04:05"), person.Name, person.ID)
	}
	return nil
}

func runPeopleCount(cmd *cobra.Command, args []string) error {
	pool, err := connectDatabase(config.Load())
	if err != nil {
		return err
	}
	defer pool.Close()

	count, err := postgres.NewPersonRepository(pool).Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to count registrations: %w", err)
	}

	fmt.Printf("%d\n", count)
	return nil
}

func runPeopleLast(cmd *cobra.Command, args []string) error {
	pool, err := connectDatabase(config.Load())
	if err != nil {
		return err
	}
	defer pool.Close()

	last, err := postgres.NewPersonRepository(pool).Last(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load last registration: %w", err)
	}
	if last == nil {
		fmt.Println("No registrations yet")
		return nil
	}

	fmt.Printf("%s  %s  (%s)\n",
		last.RegisteredAt.Format("2006-01-02 15:04:05"), last.Name, last.ID)
	return nil
}
