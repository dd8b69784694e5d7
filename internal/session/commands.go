package session

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"addressbook/internal/contacts"
)

// command is one entry of the dispatch table.
type command struct {
	name  string
	usage string
	help  string
	run   func(s *Session, args []string) (string, error)
}

// commands lists every line command in the order help prints them.
// close and exit are handled by Execute directly. It is filled in init
// because help reads it.
var commands []command

func init() {
	commands = []command{
		{"hello", "hello", "Greet the assistant", (*Session).hello},
		{"add", "add <name> <phone> [DD.MM.YYYY]", "Add a contact or a phone to an existing one", (*Session).addContact},
		{"change", "change <name> <old phone> <new phone>", "Replace a phone", (*Session).changeContact},
		{"phone", "phone <name>", "Show a contact's phones", (*Session).showPhone},
		{"all", "all", "List every contact", (*Session).showAll},
		{"delete-phone", "delete-phone <name> <phone>", "Remove a phone from a contact", (*Session).deletePhone},
		{"delete-contact", "delete-contact <name>", "Remove a contact", (*Session).deleteContact},
		{"add-birthday", "add-birthday <name> <DD.MM.YYYY>", "Set a contact's birthday", (*Session).addBirthday},
		{"show-birthday", "show-birthday <name>", "Show a contact's birthday", (*Session).showBirthday},
		{"birthdays", "birthdays", "List birthdays in the coming days", (*Session).birthdays},
		{"help", "help", "Show this list", (*Session).help},
	}
}

func (s *Session) hello(_ []string) (string, error) {
	return "How can I help you?", nil
}

func (s *Session) addContact(args []string) (string, error) {
	if len(args) < 2 {
		return "", missingArgs("Please provide both name and phone.")
	}
	name, phone := args[0], args[1]
	if _, err := contacts.ParsePhone(phone); err != nil {
		return "", err
	}
	var birthday *contacts.Birthday
	if len(args) >= 3 {
		bd, err := contacts.ParseBirthday(args[2])
		if err != nil {
			return "", err
		}
		birthday = &bd
	}

	message := "Contact updated."
	rec, ok := s.book.Find(name)
	if !ok {
		rec = contacts.NewRecord(name)
		s.book.AddRecord(rec)
		message = "Contact added."
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	if birthday != nil {
		rec.SetBirthday(*birthday)
	}
	return message, nil
}

func (s *Session) changeContact(args []string) (string, error) {
	if len(args) < 3 {
		return "", missingArgs("Please provide name, old phone and new phone.")
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]
	rec, ok := s.book.Find(name)
	if !ok {
		return "", noContact(name)
	}
	found, err := rec.EditPhone(oldPhone, newPhone)
	if err != nil {
		return "", err
	}
	if !found {
		return fmt.Sprintf("Phone %s not found in contact %s.", oldPhone, name), nil
	}
	return fmt.Sprintf("Phone %s was updated to %s for contact %s.", oldPhone, newPhone, name), nil
}

func (s *Session) showPhone(args []string) (string, error) {
	if len(args) < 1 {
		return "", missingArgs("Please provide name.")
	}
	name := args[0]
	rec, ok := s.book.Find(name)
	if !ok {
		return "", noContact(name)
	}
	return fmt.Sprintf("%s's phones: %s", name, contacts.JoinPhones(rec.Phones())), nil
}

func (s *Session) showAll(_ []string) (string, error) {
	if s.book.Len() == 0 {
		return "No contacts in your list.", nil
	}
	lines := make([]string, 0, s.book.Len())
	for _, rec := range s.book.Records() {
		lines = append(lines, rec.Name()+": "+rec.String())
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Session) deletePhone(args []string) (string, error) {
	if len(args) < 2 {
		return "", missingArgs("Please provide name and phone to delete.")
	}
	name, phone := args[0], args[1]
	rec, ok := s.book.Find(name)
	if !ok {
		return "", noContact(name)
	}
	if !rec.RemovePhone(phone) {
		return fmt.Sprintf("Phone %s not found in contact %s.", phone, name), nil
	}
	return fmt.Sprintf("Phone %s was removed from contact %s.", phone, name), nil
}

func (s *Session) deleteContact(args []string) (string, error) {
	if len(args) < 1 {
		return "", missingArgs("Please provide the name of the contact to delete.")
	}
	name := args[0]
	if !s.book.Delete(name) {
		return fmt.Sprintf("No contact with the name %s was found.", name), nil
	}
	return fmt.Sprintf("Contact %s has been deleted.", name), nil
}

func (s *Session) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", missingArgs("Please provide name and birthday. Use DD.MM.YYYY")
	}
	name, birthday := args[0], args[1]
	rec, ok := s.book.Find(name)
	if !ok {
		return "", noContact(name)
	}
	if err := rec.AddBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday added for %s.", name), nil
}

func (s *Session) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", missingArgs("Please provide name.")
	}
	name := args[0]
	if rec, ok := s.book.Find(name); ok {
		if bd, ok := rec.Birthday(); ok {
			return fmt.Sprintf("%s's birthday: %s", name, bd), nil
		}
	}
	return fmt.Sprintf("No birthday found for %s.", name), nil
}

func (s *Session) birthdays(_ []string) (string, error) {
	upcoming := s.book.UpcomingBirthdaysWithin(s.now(), s.window)
	if len(upcoming) == 0 {
		return "No upcoming birthdays.", nil
	}
	return FormatCongratulations(upcoming), nil
}

// FormatCongratulations renders one "name: DD.MM.YYYY" line per entry.
func FormatCongratulations(upcoming []contacts.Congratulation) string {
	lines := make([]string, len(upcoming))
	for i, c := range upcoming {
		lines[i] = c.Name + ": " + c.Date.String()
	}
	return strings.Join(lines, "\n")
}

func (s *Session) help(_ []string) (string, error) {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(tw, "%s\t%s\n", c.usage, c.help)
	}
	fmt.Fprintf(tw, "%s\t%s\n", "close, exit", "Save and quit")
	tw.Flush()
	return strings.TrimRight(sb.String(), "\n"), nil
}
