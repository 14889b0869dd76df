package telegram

const (
	parseModeMarkdown = "Markdown"
	actionTyping      = "typing"
	sessionPrefix     = "telegram_"
	maxDeadlines      = 15
)

const (
	msgStart = "👋 Welcome to *Canvas Assistant*!\n\n" +
		"Ask me about your courses in plain language, for example:\n" +
		"• _What's due this week?_\n" +
		"• _What's my grade in Linear Algebra?_\n" +
		"• _Any new announcements in Biology?_\n\n" +
		"Type /help to see the commands."

	msgHelp = "*Commands*\n\n" +
		"/deadlines - upcoming deadlines across all courses\n" +
		"/reset - forget our conversation\n" +
		"/help - this message\n\n" +
		"Anything else is answered from your Canvas data."

	msgReset        = "🧹 Conversation cleared."
	msgNoDeadlines  = "✅ No upcoming deadlines. Enjoy the free time!"
	msgProcessError = "Sorry, something went wrong while processing your request. Please try again."
)
