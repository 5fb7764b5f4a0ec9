package mail

import "html/template"

const paymentConfirmationSubject = "CHAD Tagung: Zahlung bestätigt"

var paymentConfirmationTemplate = template.Must(template.New("payment_confirmation").Parse(`<!DOCTYPE html>
<html lang="de">
<body style="font-family: sans-serif; line-height: 1.5;">
  <p>Hallo {{if .FirstName}}{{.FirstName}}{{else}}zusammen{{end}},</p>
  <p>wir haben deine Zahlung für die CHAD Tagung erhalten und bestätigt.</p>
  <p>Dein Verwendungszweck: <strong>{{.PaymentReference}}</strong></p>
  <p>Wir freuen uns auf dich!</p>
  <p>Dein CHAD Team</p>
</body>
</html>
`))
