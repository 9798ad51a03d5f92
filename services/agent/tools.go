package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"altitude/models"
	"altitude/services/catalog"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// Tool names exposed to the model.
const (
	toolCheckAvailability = "check_availability"
	toolGetPackageInfo    = "get_package_info"
	toolCalculatePrice    = "calculate_price"
	toolCreateBooking     = "create_booking"
	toolSearchDocuments   = "search_documents"
)

type availabilityArgs struct {
	Date        string `json:"date"`
	PackageName string `json:"package_name"`
	NumJumpers  int    `json:"num_jumpers"`
}

type packageInfoArgs struct {
	PackageName string `json:"package_name"`
}

type priceArgs struct {
	PackageName string `json:"package_name"`
	NumJumpers  int    `json:"num_jumpers"`
	PrivateRoom bool   `json:"private_room"`
}

type createBookingArgs struct {
	PackageName       string `json:"package_name"`
	NumJumpers        int    `json:"num_jumpers"`
	Date              string `json:"date"`
	TimeSlot          string `json:"time_slot"`
	CustomerName      string `json:"customer_name"`
	CustomerEmail     string `json:"customer_email"`
	CustomerPhone     string `json:"customer_phone"`
	BirthdayChildName string `json:"birthday_child_name"`
	PrivateRoom       bool   `json:"private_room"`
}

type searchArgs struct {
	Query string `json:"query"`
}

// toolDefinitions returns the function definitions offered to the model.
// search_documents is present only when a document store is configured.
func (a *Agent) toolDefinitions() []llms.Tool {
	packageEnum := catalog.Names()

	tools := []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        toolCheckAvailability,
				Description: "Check if a party slot is available for a specific date, package, and number of jumpers. Returns the available time slots.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"date":         map[string]any{"type": "string", "description": "Date in YYYY-MM-DD format (e.g., \"2025-01-17\")"},
						"package_name": map[string]any{"type": "string", "enum": packageEnum, "description": "Party package name"},
						"num_jumpers":  map[string]any{"type": "integer", "description": "Number of jumpers (minimum 10)"},
					},
					"required": []string{"date", "package_name", "num_jumpers"},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        toolGetPackageInfo,
				Description: "Get detailed information about a party package.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"package_name": map[string]any{"type": "string", "enum": packageEnum, "description": "Party package name"},
					},
					"required": []string{"package_name"},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        toolCalculatePrice,
				Description: "Calculate the total price for a party booking, with breakdown.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"package_name": map[string]any{"type": "string", "enum": packageEnum, "description": "Party package name"},
						"num_jumpers":  map[string]any{"type": "integer", "description": "Number of jumpers"},
						"private_room": map[string]any{"type": "boolean", "description": "Whether to include the private room upgrade"},
					},
					"required": []string{"package_name", "num_jumpers"},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        toolCreateBooking,
				Description: "Create a party booking and get the payment checkout link. Only call this when the user has explicitly confirmed they want to proceed with booking.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"package_name":        map[string]any{"type": "string", "enum": packageEnum, "description": "Party package name"},
						"num_jumpers":         map[string]any{"type": "integer", "description": "Number of jumpers"},
						"date":                map[string]any{"type": "string", "description": "Date in YYYY-MM-DD format"},
						"time_slot":           map[string]any{"type": "string", "description": "Time slot (e.g., \"2:00 PM\")"},
						"customer_name":       map[string]any{"type": "string", "description": "Name of the person booking"},
						"customer_email":      map[string]any{"type": "string", "description": "Email address"},
						"customer_phone":      map[string]any{"type": "string", "description": "Phone number (optional)"},
						"birthday_child_name": map[string]any{"type": "string", "description": "Name of the birthday child (optional)"},
						"private_room":        map[string]any{"type": "boolean", "description": "Whether to include the private room upgrade"},
					},
					"required": []string{"package_name", "num_jumpers", "date", "time_slot", "customer_name", "customer_email"},
				},
			},
		},
	}

	if a.docs != nil {
		tools = append(tools, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        toolSearchDocuments,
				Description: "Search uploaded documents (waivers, park rules, FAQs, etc.) for information.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"query": map[string]any{"type": "string", "description": "The question or search query"},
					},
					"required": []string{"query"},
				},
			},
		})
	}
	return tools
}

// dispatch executes one tool call and returns the content fed back to
// the model. Validation failures come back as conversational error
// strings, never as transport failures — the dialogue continues.
func (a *Agent) dispatch(ctx context.Context, call llms.ToolCall) string {
	if call.FunctionCall == nil {
		return "Error: malformed tool call"
	}
	name := call.FunctionCall.Name
	args := call.FunctionCall.Arguments

	switch name {
	case toolCheckAvailability:
		var in availabilityArgs
		if err := json.Unmarshal([]byte(args), &in); err != nil {
			return fmt.Sprintf("Error: invalid arguments for %s", name)
		}
		return a.checkAvailability(ctx, in)
	case toolGetPackageInfo:
		var in packageInfoArgs
		if err := json.Unmarshal([]byte(args), &in); err != nil {
			return fmt.Sprintf("Error: invalid arguments for %s", name)
		}
		summary, err := catalog.Summary(in.PackageName)
		if err != nil {
			return toolError(err)
		}
		return summary
	case toolCalculatePrice:
		var in priceArgs
		if err := json.Unmarshal([]byte(args), &in); err != nil {
			return fmt.Sprintf("Error: invalid arguments for %s", name)
		}
		return a.calculatePrice(in)
	case toolCreateBooking:
		var in createBookingArgs
		if err := json.Unmarshal([]byte(args), &in); err != nil {
			return fmt.Sprintf("Error: invalid arguments for %s", name)
		}
		return a.createBooking(ctx, in)
	case toolSearchDocuments:
		var in searchArgs
		if err := json.Unmarshal([]byte(args), &in); err != nil {
			return fmt.Sprintf("Error: invalid arguments for %s", name)
		}
		return a.searchDocuments(ctx, in.Query)
	default:
		return fmt.Sprintf("Error: unknown tool '%s'", name)
	}
}

func (a *Agent) checkAvailability(ctx context.Context, in availabilityArgs) string {
	avail, err := a.gateway.CheckAvailability(ctx, in.Date, in.PackageName, in.NumJumpers)
	if err != nil {
		return toolError(err)
	}
	return avail.Message
}

func (a *Agent) calculatePrice(in priceArgs) string {
	quote, err := catalog.PriceQuote(in.PackageName, in.NumJumpers, in.PrivateRoom)
	if err != nil {
		return toolError(err)
	}
	pkg, _ := catalog.Get(in.PackageName)
	roomLine := "None"
	if quote.RoomFee > 0 {
		roomLine = fmt.Sprintf("$%d", quote.RoomFee)
	}
	return fmt.Sprintf("Price Breakdown:\n$%d × %d = $%d\nPrivate Room: %s\nTotal: $%d",
		pkg.PricePerJumper, quote.NumJumpers, quote.BasePrice, roomLine, quote.Total)
}

func (a *Agent) createBooking(ctx context.Context, in createBookingArgs) string {
	// Re-run the full validation before submission; the gateway trusts
	// its callers.
	if _, err := catalog.PriceQuote(in.PackageName, in.NumJumpers, in.PrivateRoom); err != nil {
		return toolError(err)
	}
	if err := catalog.ValidateDateRestriction(in.PackageName, in.Date); err != nil {
		return toolError(err)
	}

	result, err := a.gateway.CreateBooking(ctx, models.BookingRequest{
		Package:           in.PackageName,
		NumJumpers:        in.NumJumpers,
		Date:              in.Date,
		TimeSlot:          in.TimeSlot,
		CustomerName:      in.CustomerName,
		CustomerEmail:     in.CustomerEmail,
		CustomerPhone:     in.CustomerPhone,
		BirthdayChildName: in.BirthdayChildName,
		PrivateRoom:       in.PrivateRoom,
	})
	if err != nil {
		a.logger.Error("create booking failed", zap.Error(err))
		return fmt.Sprintf("❌ Error creating booking: %v", err)
	}
	if !result.Success {
		return fmt.Sprintf("❌ Error creating booking: %s", result.Error)
	}

	// Structured side-channel: the chat handler reads this instead of
	// scraping the reply text for checkout links.
	a.outcome = &models.BookingOutcome{
		BookingID:   result.BookingID,
		CheckoutURL: result.CheckoutURL,
	}

	return fmt.Sprintf(`✅ Booking created successfully!

Booking ID: %s

Please complete your payment to secure your party slot:
%s

After payment, you'll receive a confirmation email with all the details, waiver links, and instructions.`, result.BookingID, result.CheckoutURL)
}

func (a *Agent) searchDocuments(ctx context.Context, query string) string {
	if a.docs == nil {
		return "Document search is not available. Please upload documents first."
	}
	result, err := a.docs.Search(ctx, query)
	if err != nil {
		a.logger.Warn("document search failed", zap.Error(err))
		return fmt.Sprintf("Error searching documents: %v", err)
	}
	return result
}

// toolError renders an error as a conversational string for the model.
func toolError(err error) string {
	if ve, ok := catalog.IsValidation(err); ok {
		return "Error: " + ve.Message
	}
	return fmt.Sprintf("Error: %v", err)
}
