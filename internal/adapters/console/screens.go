package console

func (c *Console) printBanner() {
	c.println(
		"╔══════════════════════════════════════╗",
		"║        Bank Management System        ║",
		"╚══════════════════════════════════════╝",
	)
}

func (c *Console) printMenu() {
	c.println()
	c.println(
		"┌─────────── MAIN MENU ───────────┐",
		"│ 1. 💰 Deposit Money             │",
		"│ 2. 💸 Withdraw Money            │",
		"│ 3. 💳 Check Balance             │",
		"│ 4. 🚪 Exit System               │",
		"└─────────────────────────────────┘",
	)
}

func (c *Console) printFarewell() {
	c.println()
	c.println(
		"══════════════════════════════════════════",
		"Thank you for using our Bank Management System!",
		"Have a great day!",
		"══════════════════════════════════════════",
	)
}
