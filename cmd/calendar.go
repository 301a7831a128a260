package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/internal/service/scheduler"
	"github.com/Saikabilane/AutoSense/internal/usecase/book_range"
	"github.com/Saikabilane/AutoSense/internal/usecase/book_slot"
	"github.com/Saikabilane/AutoSense/internal/usecase/generate_calendar"
	"github.com/Saikabilane/AutoSense/internal/usecase/get_available_slots"
	"github.com/Saikabilane/AutoSense/internal/usecase/seed_calendar"
)

var (
	generateFlags struct {
		days, firstHour, lastHour, duration, capacity int
	}
	seedFlags struct {
		ratio       float64
		maxAttempts int
		seed        uint64
	}
	availableFlags struct {
		day   string
		limit int
	}
	bookFlags struct {
		vehicleID, vehicleType, serviceType, riskLevel string
	}
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fresh calendar starting tomorrow and replace the stored table",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the calendar with synthetic bookings",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored calendar",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var availableCmd = &cobra.Command{
	Use:   "available",
	Short: "List slots that can absorb another booking",
	Args:  cobra.NoArgs,
	RunE:  runAvailable,
}

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book calendar slots",
}

var bookSlotCmd = &cobra.Command{
	Use:   "slot <slot-id>",
	Short: "Book one slot by its ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookSlot,
}

var bookRangeCmd = &cobra.Command{
	Use:   "range <start-index>",
	Short: "Book consecutive slots for a service, starting at a 0-based calendar position",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookRange,
}

func init() {
	f := generateCmd.Flags()
	f.IntVar(&generateFlags.days, "days", 0, "horizon in days (default from config)")
	f.IntVar(&generateFlags.firstHour, "first-hour", 0, "first slot hour, inclusive")
	f.IntVar(&generateFlags.lastHour, "last-hour", 0, "last slot hour, inclusive")
	f.IntVar(&generateFlags.duration, "duration", 0, "slot granularity in minutes")
	f.IntVar(&generateFlags.capacity, "capacity", 0, "bookings per slot")

	f = seedCmd.Flags()
	f.Float64Var(&seedFlags.ratio, "ratio", 0, "share of slots to book, 0..1 (default from config)")
	f.IntVar(&seedFlags.maxAttempts, "max-attempts", 0, "attempt budget (0 = default)")
	f.Uint64Var(&seedFlags.seed, "seed", 0, "fixed random seed")

	f = availableCmd.Flags()
	f.StringVar(&availableFlags.day, "day", "", "only this day name")
	f.IntVar(&availableFlags.limit, "limit", 0, "maximum number of slots")

	for _, c := range []*cobra.Command{bookSlotCmd, bookRangeCmd} {
		c.Flags().StringVar(&bookFlags.vehicleID, "vehicle", "", "vehicle id")
		c.Flags().StringVar(&bookFlags.vehicleType, "type", "", "vehicle type: "+strings.Join(domain.VehicleCategories(), ", "))
		c.Flags().StringVar(&bookFlags.serviceType, "service", "", "service type")
		c.Flags().StringVar(&bookFlags.riskLevel, "risk", "", "risk level: High, Medium, Low")
		_ = c.MarkFlagRequired("vehicle")
	}
	_ = bookRangeCmd.MarkFlagRequired("type")
	_ = bookRangeCmd.MarkFlagRequired("service")

	bookCmd.AddCommand(bookSlotCmd, bookRangeCmd)
	rootCmd.AddCommand(generateCmd, seedCmd, showCmd, availableCmd, bookCmd)
}

// withEnvironment выполняет команду с логами в stderr
func withEnvironment(cmd *cobra.Command, fn func(ctx context.Context, env *environment) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := newEnvironment(ctx, envOptions{logWriter: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(ctx, env)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
		req := &generate_calendar.Request{
			HorizonDays:         generateFlags.days,
			SlotDurationMinutes: generateFlags.duration,
			SlotCapacity:        generateFlags.capacity,
		}
		if cmd.Flags().Changed("first-hour") {
			req.FirstSlotHour = &generateFlags.firstHour
		}
		if cmd.Flags().Changed("last-hour") {
			req.LastSlotHour = &generateFlags.lastHour
		}

		resp, err := env.app.GenerateCalendar.Execute(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %d slots (%d per day), %s to %s, IDs %d..%d\n",
			resp.TotalSlots, resp.SlotsPerDay, resp.FirstDay, resp.LastDay, resp.FirstSlotID, resp.LastSlotID)
		return nil
	})
}

func runSeed(cmd *cobra.Command, _ []string) error {
	return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
		req := &seed_calendar.Request{
			Ratio:       env.cfg.Calendar.SeedRatio,
			MaxAttempts: seedFlags.maxAttempts,
		}
		if cmd.Flags().Changed("ratio") {
			req.Ratio = seedFlags.ratio
		}
		if cmd.Flags().Changed("seed") {
			req.Seed = &seedFlags.seed
		}

		resp, err := env.app.SeedCalendar.Execute(ctx, req)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Seeded %d of %d bookings in %d attempts, %d slots still available\n",
			resp.Booked, resp.Target, resp.Attempts, resp.Available)
		if resp.Exhausted {
			fmt.Fprintln(out, "Target not reached: not enough free capacity")
		}
		return nil
	})
}

func runShow(cmd *cobra.Command, _ []string) error {
	return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
		return env.app.TxManager.DoReadOnly(ctx, func(_ context.Context, cal *domain.Calendar) error {
			return scheduler.Render(cal, cmd.OutOrStdout())
		})
	})
}

func runAvailable(cmd *cobra.Command, _ []string) error {
	return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
		resp, err := env.app.GetAvailableSlots.Execute(ctx, &get_available_slots.Request{
			Day:   availableFlags.day,
			Limit: availableFlags.limit,
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(resp.Slots) == 0 {
			fmt.Fprintln(out, "No slots available")
			return nil
		}
		for _, s := range resp.Slots {
			fmt.Fprintf(out, "%d\t%s\t%d/%d free\n", s.ID, s.Descriptor, s.AvailableSpots, s.TotalSpots)
		}
		return nil
	})
}

func runBookSlot(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid slot id %q: %w", args[0], err)
	}
	return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
		resp, err := env.app.BookSlot.Execute(ctx, &book_slot.Request{
			SlotID:      id,
			VehicleID:   bookFlags.vehicleID,
			VehicleType: bookFlags.vehicleType,
			ServiceType: bookFlags.serviceType,
			RiskLevel:   bookFlags.riskLevel,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), resp.Confirmation)
		return nil
	})
}

func runBookRange(cmd *cobra.Command, args []string) error {
	start, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid start index %q: %w", args[0], err)
	}
	return withEnvironment(cmd, func(ctx context.Context, env *environment) error {
		resp, err := env.app.BookRange.Execute(ctx, &book_range.Request{
			StartIndex:  start,
			VehicleID:   bookFlags.vehicleID,
			VehicleType: bookFlags.vehicleType,
			ServiceType: bookFlags.serviceType,
			RiskLevel:   bookFlags.riskLevel,
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Booked slots %d..%d for %s (%d min)\n", resp.StartID, resp.EndID, bookFlags.vehicleID, resp.DurationMinutes)
		for _, s := range resp.Slots {
			fmt.Fprintf(out, "  %d\t%s %s\tused=%d\n", s.ID, s.Day, s.Time, s.Used)
		}
		return nil
	})
}
