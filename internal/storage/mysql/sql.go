package mysql

// ---- hotel chains ----

const insertChainSQL = `
INSERT INTO hotel_chain (chain_name, address, number_of_hotels, contact_email, phone_number)
VALUES (?, ?, ?, ?, ?)
`

const listChainsSQL = `
SELECT chain_name, address, number_of_hotels, contact_email, phone_number
FROM hotel_chain
ORDER BY chain_name
LIMIT ? OFFSET ?
`

const getChainSQL = `
SELECT chain_name, address, number_of_hotels, contact_email, phone_number
FROM hotel_chain
WHERE chain_name = ?
`

const deleteChainSQL = `DELETE FROM hotel_chain WHERE chain_name = ?`

// ---- hotels ----

const insertHotelSQL = `
INSERT INTO hotel (address, contact_email, phone_number, number_of_rooms, rating, chain_name, manager_id)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const listHotelsSQL = `
SELECT address, contact_email, phone_number, number_of_rooms, rating, chain_name, manager_id
FROM hotel
ORDER BY address
LIMIT ? OFFSET ?
`

const getHotelSQL = `
SELECT address, contact_email, phone_number, number_of_rooms, rating, chain_name, manager_id
FROM hotel
WHERE address = ?
`

const deleteHotelSQL = `DELETE FROM hotel WHERE address = ?`

// ---- rooms ----

const insertRoomSQL = `
INSERT INTO room (room_number, price, amenities, problems, extendable, view_type, capacity, hotel_address)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

const roomColumns = `r.room_number, r.price, r.amenities, r.problems, r.extendable, r.view_type, r.capacity, r.hotel_address`

const listRoomsSQL = `
SELECT ` + roomColumns + `
FROM room r
ORDER BY r.room_number
LIMIT ? OFFSET ?
`

const getRoomSQL = `
SELECT ` + roomColumns + `
FROM room r
WHERE r.room_number = ? AND r.hotel_address = ?
`

const deleteRoomSQL = `DELETE FROM room WHERE room_number = ? AND hotel_address = ?`

const searchRoomsBaseSQL = `
SELECT ` + roomColumns + `
FROM room r
JOIN hotel h ON h.address = r.hotel_address
`

// Excludes rooms with a booking overlapping [?, ?]; params are
// (end_date, start_date) per the inclusive overlap predicate.
const searchBookedClause = `
r.room_number NOT IN (
  SELECT b.room_number FROM booking b
  WHERE b.start_date <= ? AND b.end_date >= ?
)`

// ---- employees ----

const insertEmployeeSQL = `
INSERT INTO employee (ssn, full_name, address, job_position, hotel_id)
VALUES (?, ?, ?, ?, ?)
`

const listEmployeesSQL = `
SELECT ssn, full_name, address, job_position, hotel_id
FROM employee
ORDER BY ssn
LIMIT ? OFFSET ?
`

const getEmployeeSQL = `
SELECT ssn, full_name, address, job_position, hotel_id
FROM employee
WHERE ssn = ?
`

const deleteEmployeeSQL = `DELETE FROM employee WHERE ssn = ?`

// ---- customers ----

const insertCustomerSQL = `
INSERT INTO customer (customer_id, full_name, address, date_of_registration)
VALUES (?, ?, ?, ?)
`

const listCustomersSQL = `
SELECT customer_id, full_name, address, date_of_registration
FROM customer
ORDER BY customer_id
LIMIT ? OFFSET ?
`

const getCustomerSQL = `
SELECT customer_id, full_name, address, date_of_registration
FROM customer
WHERE customer_id = ?
`

const deleteCustomerSQL = `DELETE FROM customer WHERE customer_id = ?`

// ---- bookings ----

// Serializes concurrent booking attempts for one room.
const lockRoomSQL = `SELECT room_number FROM room WHERE room_number = ? FOR UPDATE`

const bookingsForRoomSQL = `
SELECT start_date, end_date FROM booking WHERE room_number = ?
`

const insertBookingSQL = `
INSERT INTO booking (start_date, end_date, room_number, customer_id)
VALUES (?, ?, ?, ?)
`

const listBookingsSQL = `
SELECT booking_id, start_date, end_date, room_number, customer_id
FROM booking
ORDER BY booking_id
LIMIT ? OFFSET ?
`

const getBookingSQL = `
SELECT booking_id, start_date, end_date, room_number, customer_id
FROM booking
WHERE booking_id = ?
`

const getBookingForUpdateSQL = getBookingSQL + ` FOR UPDATE`

const deleteBookingSQL = `DELETE FROM booking WHERE booking_id = ?`

// ---- rentings ----

const insertRentingSQL = `
INSERT INTO renting (payment_information, start_date, end_date, employee_id, customer_id, room_number, booking_id)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const listRentingsSQL = `
SELECT renting_id, payment_information, start_date, end_date, employee_id, customer_id, room_number, booking_id
FROM renting
ORDER BY renting_id
LIMIT ? OFFSET ?
`

const getRentingSQL = `
SELECT renting_id, payment_information, start_date, end_date, employee_id, customer_id, room_number, booking_id
FROM renting
WHERE renting_id = ?
`

const deleteRentingSQL = `DELETE FROM renting WHERE renting_id = ?`

// ---- reporting views ----

// Area is the leading comma-delimited segment of the hotel address.
const availableRoomsPerAreaSQL = `
SELECT
  SUBSTRING_INDEX(h.address, ',', 1) AS area,
  COUNT(r.room_number)               AS available_rooms
FROM hotel h
JOIN room r ON r.hotel_address = h.address
WHERE r.room_number NOT IN (
  SELECT room_number
  FROM booking
  WHERE CURRENT_DATE() BETWEEN start_date AND end_date
)
GROUP BY SUBSTRING_INDEX(h.address, ',', 1)
`

const hotelRoomCapacitySQL = `
SELECT
  h.address                              AS hotel_address,
  h.chain_name                           AS hotel_chain,
  COUNT(r.room_number)                   AS total_rooms,
  COALESCE(SUM(r.capacity), 0)           AS total_capacity,
  ROUND(COALESCE(AVG(r.capacity), 0), 2) AS average_room_capacity
FROM hotel h
JOIN room r ON r.hotel_address = h.address
GROUP BY h.address, h.chain_name
`
