package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TelegramLogger/pkg/tglogger"
)

func sendCmd() *cobra.Command {
	var (
		timeout   time.Duration
		parseMode string
		silent    bool
	)

	cmd := &cobra.Command{
		Use:   "send [text...]",
		Short: "Отправить сообщение (текст из аргументов или stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = strings.TrimRight(string(data), "\r\n")
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("message text is empty")
			}

			a, err := bootstrap(false)
			if err != nil {
				return err
			}
			defer a.close()

			// Флаги переопределяют параметры [delivery]
			msg := a.cfg.Delivery.DefaultMessage()
			msg.Text = text
			if cmd.Flags().Changed("timeout") {
				msg.Timeout = timeout
			}
			if cmd.Flags().Changed("parse-mode") {
				msg.ParseMode = tglogger.ParseMode(parseMode)
			}
			if cmd.Flags().Changed("silent") {
				msg.DisableNotification = silent
			}

			report, err := a.session.Log(cmd.Context(), msg)
			if err != nil {
				return err
			}
			if !report.Delivered() {
				return fmt.Errorf("message not delivered: %s after %d attempts", report.Status, report.Attempts)
			}

			a.log.Info("Message delivered (attempts: %d, elapsed: %s)", report.Attempts, report.Elapsed)
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "retry until delivered or timeout elapses (0 = single attempt)")
	cmd.Flags().StringVarP(&parseMode, "parse-mode", "p", "", `text markup: "Markdown" or "HTML"`)
	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "send without notification sound")

	return cmd
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Проверить токен бота и показать параметры сессии",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(false)
			if err != nil {
				return err
			}
			defer a.close()

			fmt.Fprintln(cmd.OutOrStdout(), a.session.String())

			if !a.session.Verified() {
				return fmt.Errorf("bot token was not verified")
			}
			return nil
		},
	}
}
