package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joshuawatkins04/fincode-go"
)

// env carries the process dependencies of the commands.
type env struct {
	Stdout     io.Writer
	Stderr     io.Writer
	LoadConfig func() (fincode.Config, error)
}

func defaultEnv() *env {
	return &env{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		LoadConfig: fincode.LoadConfig,
	}
}

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	verbose     bool
	environment string
	apiVersion  string
	baseURL     string
}

// app builds clients and writes output for the commands.
type app struct {
	env   *env
	flags globalFlags
}

func (a *app) client() (*fincode.Client, error) {
	cfg, err := a.env.LoadConfig()
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	opts := []fincode.Option{
		fincode.WithLogger(slog.New(slog.NewTextHandler(a.env.Stderr, &slog.HandlerOptions{Level: level}))),
	}
	if a.flags.environment != "" {
		opts = append(opts, fincode.WithEnvironment(fincode.Environment(a.flags.environment)))
	}
	if a.flags.apiVersion != "" {
		opts = append(opts, fincode.WithAPIVersion(a.flags.apiVersion))
	}
	if a.flags.baseURL != "" {
		opts = append(opts, fincode.WithBaseURL(a.flags.baseURL))
	}
	return fincode.NewClientFromConfig(cfg, opts...)
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.env.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newRootCmd creates the root command with every subcommand attached.
func newRootCmd(e *env) *cobra.Command {
	a := &app{env: e}

	cmd := &cobra.Command{
		Use:     "fincode",
		Short:   "Call the fincode payment API",
		Version: fincode.Version,
		Long: `Call the fincode payment API from the command line.

The API key is read from FINCODE_API_KEY. FINCODE_ENVIRONMENT, FINCODE_API_VERSION,
FINCODE_PROXY and FINCODE_TIMEOUT are honoured as well. A .env file in the working
directory is loaded first.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(e.Stdout)
	cmd.SetErr(e.Stderr)

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log requests to stderr")
	pf.StringVar(&a.flags.environment, "environment", "", "test or live (overrides FINCODE_ENVIRONMENT)")
	pf.StringVar(&a.flags.apiVersion, "api-version", "", "API-Version header, e.g. 20211001")
	pf.StringVar(&a.flags.baseURL, "base-url", "", "override the API host")
	_ = pf.MarkHidden("base-url")

	cmd.AddCommand(classifyCmd(a))
	cmd.AddCommand(customersCmd(a))
	cmd.AddCommand(paymentsCmd(a))
	cmd.AddCommand(requestCmd(a))

	return cmd
}

// classifyCmd creates the "classify" command.
func classifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <code>...",
		Short: "Print the category of API error codes",
		Example: `  fincode classify E9994001001
  fincode classify E0101002002 E9993134002`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, code := range args {
				category, err := fincode.Classify(code)
				if err != nil {
					return fmt.Errorf("classify %q: %w", code, err)
				}
				fmt.Fprintf(a.env.Stdout, "%s\t%s\n", code, category)
			}
			return nil
		},
	}
}

// customersCmd creates the "customers" command with its subcommands.
func customersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "List and retrieve customers",
	}

	var (
		limit int
		page  int
		sorts []string
	)
	list := &cobra.Command{
		Use:     "list",
		Short:   "List customers",
		Example: `  fincode customers list --limit 10 --sort created:desc`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sort, err := parseSorts(sorts)
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			customers, err := client.Customers.List(cmd.Context(), fincode.ListCustomersParams{
				ListParams: fincode.ListParams{Limit: limit, Page: page, Sort: sort},
			}, nil)
			if err != nil {
				return err
			}
			return a.print(customers)
		},
	}
	list.Flags().IntVar(&limit, "limit", 0, "page size")
	list.Flags().IntVar(&page, "page", 0, "page number")
	list.Flags().StringSliceVar(&sorts, "sort", nil, "sort as field:order, repeatable")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			customer, err := client.Customers.Retrieve(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			return a.print(customer)
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

// paymentsCmd creates the "payments" command with its subcommands.
func paymentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Retrieve payments",
	}

	var (
		payType     string
		maxParallel int
	)
	get := &cobra.Command{
		Use:   "get <id>...",
		Short: "Retrieve one or more payments concurrently",
		Example: `  fincode payments get --pay-type Card o_abc o_def`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			results := make([]*fincode.Payment, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(maxParallel, 1))
			for i, id := range args {
				i, id := i, id
				g.Go(func() error {
					p, err := client.Payments.Retrieve(ctx, id, fincode.PayType(payType), nil)
					if err != nil {
						return fmt.Errorf("payment %s: %w", id, err)
					}
					results[i] = p
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if len(results) == 1 {
				return a.print(results[0])
			}
			return a.print(results)
		},
	}
	get.Flags().StringVar(&payType, "pay-type", string(fincode.PayTypeCard), "pay type of the payments")
	get.Flags().IntVar(&maxParallel, "parallel", 4, "maximum concurrent requests")

	cmd.AddCommand(get)
	return cmd
}

// requestCmd creates the "request" command, a raw call to any endpoint.
func requestCmd(a *app) *cobra.Command {
	var (
		data           string
		params         []string
		idempotencyKey string
		tenantShopID   string
	)
	cmd := &cobra.Command{
		Use:   "request <method> <path>",
		Short: "Send a raw request and print the JSON response",
		Example: `  fincode request GET /v1/customers --param limit=5
  fincode request POST /v1/customers --data '{"name":"Taro"}' --idempotency-key k1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := strings.ToUpper(args[0])
			switch method {
			case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
			default:
				return fmt.Errorf("invalid argument %q: method must be GET, POST, PUT or DELETE", args[0])
			}

			var body any
			if data != "" {
				if !json.Valid([]byte(data)) {
					return fmt.Errorf("invalid argument %q for --data: not JSON", data)
				}
				body = json.RawMessage(data)
			}

			query := fincode.Params{}
			for _, p := range params {
				key, value, ok := strings.Cut(p, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid argument %q for --param: want key=value", p)
				}
				query = query.Add(key, value)
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			raw, err := client.Do(cmd.Context(), method, args[1], body, query, &fincode.RequestOptions{
				IdempotencyKey: idempotencyKey,
				TenantShopID:   tenantShopID,
			})
			if err != nil {
				return err
			}
			return a.print(raw)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "query parameter key=value, repeatable")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "idempotent_key header")
	cmd.Flags().StringVar(&tenantShopID, "tenant-shop-id", "", "Tenant-Shop-Id header")
	return cmd
}

// parseSorts converts field:order flags into sort specifications.
func parseSorts(values []string) ([]fincode.Sort, error) {
	sorts := make([]fincode.Sort, 0, len(values))
	for _, v := range values {
		field, order, _ := strings.Cut(v, ":")
		if order == "" {
			order = fincode.OrderAsc
		}
		if field == "" || (order != fincode.OrderAsc && order != fincode.OrderDesc) {
			return nil, fmt.Errorf("invalid argument %q for --sort: want field:asc or field:desc", v)
		}
		sorts = append(sorts, fincode.Sort{Field: field, Order: order})
	}
	return sorts, nil
}
