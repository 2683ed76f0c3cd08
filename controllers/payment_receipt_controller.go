package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadPaymentReceipt generates and returns a PDF receipt for a payment
func DownloadPaymentReceipt(c *gin.Context) {
	utils.LogInfo("Starting receipt download process")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("Unauthorized receipt download attempt - no user found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	user := userVal.(models.User)

	paymentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid payment ID format in receipt download request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}
	utils.LogInfo("Processing receipt download for payment ID: %d", paymentID)

	var payment models.Payment
	if err := config.DB.Preload("User").Preload("Professional").
		Where("id = ? AND user_id = ?", paymentID, user.ID).First(&payment).Error; err != nil {
		utils.LogError("Payment not found for receipt download - Payment ID: %d, User ID: %d", paymentID, user.ID)
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Company header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "ProFinder")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Connecting you with verified professionals")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@profinder.in | Phone: +91-12345-67890")
	pdf.Ln(12)

	// Receipt title and payment info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Receipt No: "+strconv.Itoa(int(payment.ID)))
	pdf.Cell(70, 8, "Date: "+payment.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Status: "+payment.Status)
	if payment.RazorpayPaymentID != "" {
		pdf.Cell(70, 8, "Transaction ID: "+payment.RazorpayPaymentID)
	}
	pdf.Ln(10)

	// Payer info
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Paid By:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, payment.User.FirstName+" "+payment.User.LastName)
	pdf.Ln(6)
	pdf.Cell(100, 8, payment.User.Email)
	pdf.Ln(10)

	if payment.Professional != nil {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(100, 8, "Service Professional:")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(100, 8, payment.Professional.Name+" ("+payment.Professional.Profession+")")
		pdf.Ln(10)
	}

	// Amount table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 8, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(90, 8, "Service request fee", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f %s", payment.Amount, payment.Currency), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	if payment.Status == models.PaymentStatusFailed && payment.FailureReason != "" {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(140, 8, "Failure reason: "+payment.FailureReason)
		pdf.Ln(8)
	}

	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(140, 8, "This is a computer-generated receipt and does not require a signature.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate receipt PDF for payment %d: %v", payment.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate receipt"})
		return
	}
	utils.LogInfo("Generated receipt PDF for payment ID: %d", payment.ID)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", payment.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
