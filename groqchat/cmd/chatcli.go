// groqchat/cmd/chatcli.go
// Command-line client for the chat API
package main

import (
	"bufio"
	"context"
	"fmt"
	"groqchat/groqchat/sources/models"
	"groqchat/groqchat/utils/color"
	"groqchat/groqchat/utils/jsonutils"
	"groqchat/groqchat/utils/types"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

func main() {
	if os.Getenv("CHAT_NO_COLOR") != "" {
		color.Disable()
	}
	client := newAPIClient(os.Getenv("CHAT_API_URL"))
	if err := run(context.Background(), client, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, color.ColorError("error: "+err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, client *apiClient, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "new":
		resp, err := client.NewConversation(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, resp.ConversationID)
		return nil
	case "chat":
		if len(args) < 2 {
			return fmt.Errorf("usage: chatcli chat <conversation_id>")
		}
		return chatLoop(ctx, client, args[1], in, out)
	case "history":
		if len(args) < 2 {
			return fmt.Errorf("usage: chatcli history <conversation_id> [skip] [limit] [--json]")
		}
		return printHistory(ctx, client, args[1], args[2:], out)
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "chatcli usage:")
	fmt.Fprintln(out, "  chatcli new                                   # start a conversation")
	fmt.Fprintln(out, "  chatcli chat <id>                             # chat interactively")
	fmt.Fprintln(out, "  chatcli history <id> [skip] [limit] [--json]  # show stored messages")
}

func chatLoop(ctx context.Context, client *apiClient, conversationID string, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, color.ColorInfo("Conversation "+conversationID+". Type 'exit' to quit."))
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, color.ColorPrompt("you> "))
		if !scanner.Scan() {
			break // EOF or error
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Fprintln(out, "Goodbye!")
			break
		}
		if line == "" {
			continue
		}
		reply, err := client.Send(ctx, conversationID, line)
		if err != nil {
			fmt.Fprintln(out, color.ColorError(err.Error()))
			continue
		}
		fmt.Fprintln(out, color.ColorAssistant("assistant> ")+reply.Content)
	}
	return scanner.Err()
}

func printHistory(ctx context.Context, client *apiClient, conversationID string, rest []string, out io.Writer) error {
	asJSON := false
	var nums []int
	for _, arg := range rest {
		if arg == "--json" {
			asJSON = true
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid number %q", arg)
		}
		nums = append(nums, n)
	}
	skip, limit := types.DefaultHistorySkip, types.DefaultHistoryLimit
	if len(nums) > 0 {
		skip = nums[0]
	}
	if len(nums) > 1 {
		limit = nums[1]
	}

	msgs, err := client.History(ctx, conversationID, skip, limit)
	if isNotFound(err) {
		fmt.Fprintln(out, color.ColorWarning("No messages stored for conversation "+conversationID))
		return nil
	}
	if err != nil {
		return err
	}
	if asJSON {
		encoded, err := jsonutils.ToJSON(msgs)
		if err != nil {
			return fmt.Errorf("encode history: %w", err)
		}
		fmt.Fprintln(out, encoded)
		return nil
	}
	renderTable(out, msgs)
	return nil
}

func renderTable(out io.Writer, msgs []models.Message) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Time", "Sender", "Content"})
	table.SetAutoWrapText(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, m := range msgs {
		table.Append([]string{
			m.Timestamp.Local().Format(time.DateTime),
			color.ColorSender(string(m.Sender)),
			m.Content,
		})
	}
	table.Render()
}
