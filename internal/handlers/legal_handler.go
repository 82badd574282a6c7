package handlers

import (
	"github.com/gofiber/fiber/v2"
)

const siteName = "Archivo Mural"

type LegalHandler struct{}

func NewLegalHandler() *LegalHandler {
	return &LegalHandler{}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - ` + siteName + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: September 2026</p>
<h2>Information We Collect</h2>
<p>We collect your email address, your saved collections and the salas you curate. If you sign in with Google, we receive your Google account identifier and profile picture.</p>
<h2>How We Use Your Information</h2>
<p>Your data is used solely to operate ` + siteName + `, authenticate your account, and display the exhibits you curate.</p>
<h2>Data Storage</h2>
<p>Your data is stored securely on encrypted servers. We do not sell your personal information to third parties. Uploaded artwork images are stored with our image hosting provider.</p>
<h2>Account Deletion</h2>
<p>You can delete your account and all associated data, including your salas and collections, at any time from your profile settings.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact us at privacy@archivomural.org</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Terms of Service - ` + siteName + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Terms of Service</h1>
<p>Last updated: September 2026</p>
<h2>Acceptance of Terms</h2>
<p>By using ` + siteName + ` you agree to these terms. If you do not agree, do not use the service.</p>
<h2>Curated Content</h2>
<p>Curators are responsible for the accuracy of the artwork metadata they publish. Uploading images you do not have the right to distribute is prohibited.</p>
<h2>Reported Content</h2>
<p>We review visitor reports about artworks and may amend or remove entries that violate these terms.</p>
<h2>Availability</h2>
<p>The service is provided as-is without warranty of any kind. We may modify or discontinue features at any time.</p>
<h2>Contact</h2>
<p>For questions about these terms, contact us at legal@archivomural.org</p>
</body></html>`)
}
